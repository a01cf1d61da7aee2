package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/banshee-data/amazer/internal/catalog"
	"github.com/banshee-data/amazer/internal/config"
	"github.com/banshee-data/amazer/internal/fsutil"
	"github.com/banshee-data/amazer/internal/pipeline"
)

var errVersion = errors.New("version requested")

// runGenerate parses args, merges flags over the optional config file and
// runs the pipeline on the single positional input path.
func runGenerate(args []string, fsys fsutil.FileSystem) (*pipeline.Result, error) {
	fs := flag.NewFlagSet("amazer", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: amazer [flags] maze.json\n")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "path to a JSON config file")
	modelOut := fs.String("model", config.DefaultModelOutput, "model output path")
	atomsOut := fs.String("atoms", config.DefaultAtomsOutput, "atom valuation output path")
	spacing := fs.Float64("spacing", config.DefaultRoomSpacing, "distance between adjacent room centres")
	workers := fs.Int("workers", 0, "placement and valuation workers (0 = number of CPUs)")
	strict := fs.Bool("strict", false, "fail when any link cannot be turned into a corridor")
	verify := fs.Bool("verify", false, "check the built complex for closure and index consistency")
	catalogPath := fs.String("catalog", "", "SQLite run catalog path (empty disables)")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *showVersion {
		return nil, errVersion
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected one input file, got %d arguments", fs.NArg())
	}

	cfg := config.EmptyConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(*configPath); err != nil {
			return nil, err
		}
	}

	// Flags given on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.ModelOutput = modelOut
		case "atoms":
			cfg.AtomsOutput = atomsOut
		case "spacing":
			cfg.RoomSpacing = spacing
		case "workers":
			if *workers > 0 {
				cfg.Workers = workers
			}
		case "strict":
			cfg.StrictCorridors = strict
		case "verify":
			cfg.VerifyComplex = verify
		case "catalog":
			cfg.CatalogPath = catalogPath
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	opts := pipeline.OptionsFromConfig(fs.Arg(0), cfg)
	if path := cfg.GetCatalogPath(); path != "" {
		cat, err := catalog.Open(path)
		if err != nil {
			return nil, err
		}
		defer cat.Close()
		opts.Catalog = cat
	}

	return pipeline.Run(fsys, opts)
}
