package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/banshee-data/amazer/internal/simplicial"
)

// Defaults for every generator setting.
const (
	DefaultRoomSpacing = 60.0
	DefaultModelOutput = "mazeModel.json"
	DefaultAtomsOutput = "mazeAtoms.json"

	maxFileSize = 1 * 1024 * 1024 // 1MB
)

// GeneratorConfig holds the settings for one generation run. Fields left nil
// fall back to the defaults returned by the Get* accessors, so partial
// config files are safe.
type GeneratorConfig struct {
	RoomSpacing     *float64 `json:"room_spacing,omitempty"`
	ModelOutput     *string  `json:"model_output,omitempty"`
	AtomsOutput     *string  `json:"atoms_output,omitempty"`
	StrictCorridors *bool    `json:"strict_corridors,omitempty"`
	Workers         *int     `json:"workers,omitempty"`
	VerifyComplex   *bool    `json:"verify_complex,omitempty"`
	CatalogPath     *string  `json:"catalog_path,omitempty"`
}

// EmptyConfig returns a GeneratorConfig with all fields set to nil.
func EmptyConfig() *GeneratorConfig {
	return &GeneratorConfig{}
}

// LoadConfig loads a GeneratorConfig from a JSON file.
// The file must have a .json extension and be under the max file size.
func LoadConfig(path string) (*GeneratorConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *GeneratorConfig) Validate() error {
	if c.RoomSpacing != nil && *c.RoomSpacing <= simplicial.RoomExtent {
		return fmt.Errorf("room_spacing must exceed the room extent %g, got %g", float64(simplicial.RoomExtent), *c.RoomSpacing)
	}
	if c.Workers != nil && *c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", *c.Workers)
	}
	if c.ModelOutput != nil && *c.ModelOutput == "" {
		return fmt.Errorf("model_output must not be empty")
	}
	if c.AtomsOutput != nil && *c.AtomsOutput == "" {
		return fmt.Errorf("atoms_output must not be empty")
	}
	if c.GetModelOutput() == c.GetAtomsOutput() {
		return fmt.Errorf("model_output and atoms_output must differ, both are %q", c.GetModelOutput())
	}
	return nil
}

// GetRoomSpacing returns the room_spacing value or the default.
func (c *GeneratorConfig) GetRoomSpacing() float64 {
	if c.RoomSpacing == nil {
		return DefaultRoomSpacing
	}
	return *c.RoomSpacing
}

// GetModelOutput returns the model_output value or the default.
func (c *GeneratorConfig) GetModelOutput() string {
	if c.ModelOutput == nil || *c.ModelOutput == "" {
		return DefaultModelOutput
	}
	return *c.ModelOutput
}

// GetAtomsOutput returns the atoms_output value or the default.
func (c *GeneratorConfig) GetAtomsOutput() string {
	if c.AtomsOutput == nil || *c.AtomsOutput == "" {
		return DefaultAtomsOutput
	}
	return *c.AtomsOutput
}

// GetStrictCorridors returns the strict_corridors value or the default.
func (c *GeneratorConfig) GetStrictCorridors() bool {
	if c.StrictCorridors == nil {
		return false // default: skip unsupported links
	}
	return *c.StrictCorridors
}

// GetWorkers returns the workers value or the default.
func (c *GeneratorConfig) GetWorkers() int {
	if c.Workers == nil {
		return runtime.NumCPU()
	}
	return *c.Workers
}

// GetVerifyComplex returns the verify_complex value or the default.
func (c *GeneratorConfig) GetVerifyComplex() bool {
	if c.VerifyComplex == nil {
		return false
	}
	return *c.VerifyComplex
}

// GetCatalogPath returns the catalog_path value; empty disables the catalog.
func (c *GeneratorConfig) GetCatalogPath() string {
	if c.CatalogPath == nil {
		return ""
	}
	return *c.CatalogPath
}
