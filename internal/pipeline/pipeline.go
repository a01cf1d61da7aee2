// Package pipeline runs one generation pass: load the maze, validate the
// templates, place rooms and corridors, propagate atoms and write both
// artifacts.
package pipeline

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/banshee-data/amazer/internal/catalog"
	"github.com/banshee-data/amazer/internal/config"
	"github.com/banshee-data/amazer/internal/fsutil"
	"github.com/banshee-data/amazer/internal/maze"
	"github.com/banshee-data/amazer/internal/modelio"
	"github.com/banshee-data/amazer/internal/monitoring"
	"github.com/banshee-data/amazer/internal/placement"
	"github.com/banshee-data/amazer/internal/simplicial"
	"github.com/banshee-data/amazer/internal/timeutil"
	"github.com/banshee-data/amazer/internal/valuation"
	"github.com/banshee-data/amazer/internal/version"
)

// Options configures a run.
type Options struct {
	InputPath string
	ModelPath string
	AtomsPath string
	Spacing   float64
	Workers   int

	// Strict turns any unsupported link into a fatal error raised before
	// output is written.
	Strict bool

	// Verify runs the full complex check after placement.
	Verify bool

	// Catalog, when set, receives a record of every successful run.
	Catalog *catalog.Catalog

	// Clock times the run; nil means the wall clock.
	Clock timeutil.Clock
}

// OptionsFromConfig builds run options for inputPath from cfg.
func OptionsFromConfig(inputPath string, cfg *config.GeneratorConfig) Options {
	return Options{
		InputPath: inputPath,
		ModelPath: cfg.GetModelOutput(),
		AtomsPath: cfg.GetAtomsOutput(),
		Spacing:   cfg.GetRoomSpacing(),
		Workers:   cfg.GetWorkers(),
		Strict:    cfg.GetStrictCorridors(),
		Verify:    cfg.GetVerifyComplex(),
	}
}

// Result describes a run. Stage is the last stage completed; on error the
// fields filled by later stages are nil.
type Result struct {
	Stage       Stage
	InputPath   string
	InputSHA256 string
	Maze        *maze.Maze
	Complex     *simplicial.Complex
	Valuation   *valuation.Valuation
	Diagnostics []*placement.CorridorError
	ModelPath   string
	AtomsPath   string
	RunID       string
	Duration    time.Duration
}

// Run executes the pass against fsys. The returned Result is never nil.
func Run(fsys fsutil.FileSystem, opts Options) (*Result, error) {
	clock := opts.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	start := clock.Now()
	res := &Result{
		Stage:     StageNew,
		InputPath: opts.InputPath,
		ModelPath: opts.ModelPath,
		AtomsPath: opts.AtomsPath,
	}
	defer func() { res.Duration = clock.Since(start) }()

	data, err := fsys.ReadFile(opts.InputPath)
	if err != nil {
		return res, fmt.Errorf("read input %s: %w", opts.InputPath, err)
	}
	sum := sha256.Sum256(data)
	res.InputSHA256 = hex.EncodeToString(sum[:])

	m, err := maze.Load(bytes.NewReader(data))
	if err != nil {
		return res, fmt.Errorf("%s: %w", opts.InputPath, err)
	}
	res.Maze = m
	res.Stage = StageLoaded
	monitoring.Stagef(res.Stage.String(), "%d nodes, %d links, grid %dx%dx%d",
		len(m.Nodes), len(m.Links), m.Grid.X, m.Grid.Y, m.Grid.Z)

	engine, err := placement.NewEngine(placement.Options{Spacing: opts.Spacing, Workers: opts.Workers})
	if err != nil {
		return res, err
	}
	res.Stage = StageTemplated
	monitoring.Stagef(res.Stage.String(), "%d points and %d simplices per room, %d simplices per corridor",
		engine.PointsPerRoom(), engine.SimplicesPerRoom(), engine.SimplicesPerCorridor())

	c, diags, err := engine.Place(m)
	if err != nil {
		return res, err
	}
	res.Diagnostics = diags
	if opts.Strict && len(diags) > 0 {
		errs := make([]error, len(diags))
		for i, d := range diags {
			errs[i] = d
		}
		return res, fmt.Errorf("%d unsupported links in strict mode: %w", len(diags), errors.Join(errs...))
	}
	if opts.Verify {
		if err := c.Verify(); err != nil {
			return res, fmt.Errorf("complex check failed: %w", err)
		}
	}
	res.Complex = c
	res.Stage = StagePlaced
	monitoring.Stagef(res.Stage.String(), "%d rooms, %d corridors, %d points, %d simplices, %d links skipped",
		c.Rooms, c.Corridors, len(c.Points), len(c.Simplices), len(diags))

	v, err := valuation.Propagate(c, valuation.FlagRooms(m), opts.Workers)
	if err != nil {
		return res, err
	}
	res.Valuation = v
	res.Stage = StagePropagated
	monitoring.Stagef(res.Stage.String(), "%d atoms %v", len(v.Names), v.Names)

	if err := writeArtifacts(fsys, opts, c, v); err != nil {
		return res, err
	}
	res.Stage = StageSerialized
	monitoring.Stagef(res.Stage.String(), "wrote %s and %s", opts.ModelPath, opts.AtomsPath)

	if opts.Catalog != nil {
		run := res.CatalogRun()
		run.Duration = clock.Since(start)
		run.CreatedAt = clock.Now().UnixNano()
		if err := opts.Catalog.RecordRun(run); err != nil {
			return res, fmt.Errorf("record run: %w", err)
		}
		res.RunID = run.RunID
	}
	return res, nil
}

// writeArtifacts writes the model and then the valuation. A failure on the
// valuation also removes the model so the pair is never left half written.
func writeArtifacts(fsys fsutil.FileSystem, opts Options, c *simplicial.Complex, v *valuation.Valuation) error {
	err := fsutil.WriteStream(fsys, opts.ModelPath, func(w *bufio.Writer) error {
		return modelio.WriteModel(w, c, v)
	})
	if err != nil {
		return outputError(err)
	}

	err = fsutil.WriteStream(fsys, opts.AtomsPath, func(w *bufio.Writer) error {
		return modelio.WriteAtoms(w, v)
	})
	if err != nil {
		if rmErr := fsys.Remove(opts.ModelPath); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("remove %s: %w", opts.ModelPath, rmErr))
		}
		return outputError(err)
	}
	return nil
}

func outputError(err error) error {
	if errors.Is(err, modelio.ErrOutput) {
		return err
	}
	return fmt.Errorf("%w: %w", modelio.ErrOutput, err)
}

// CatalogRun converts the result into a catalog record.
func (r *Result) CatalogRun() *catalog.Run {
	run := &catalog.Run{
		InputPath:    r.InputPath,
		InputSHA256:  r.InputSHA256,
		ModelOutput:  r.ModelPath,
		AtomsOutput:  r.AtomsPath,
		SkippedLinks: len(r.Diagnostics),
		Version:      version.Version,
		Duration:     r.Duration,
	}
	if r.Maze != nil {
		run.GridX, run.GridY, run.GridZ = r.Maze.Grid.X, r.Maze.Grid.Y, r.Maze.Grid.Z
	}
	if r.Complex != nil {
		run.Rooms = r.Complex.Rooms
		run.Points = len(r.Complex.Points)
		run.Simplices = len(r.Complex.Simplices)
		run.Corridors = r.Complex.Corridors
	}
	if r.Valuation != nil {
		run.Atoms = len(r.Valuation.Names)
	}
	for _, d := range r.Diagnostics {
		run.Diagnostics = append(run.Diagnostics, catalog.Diagnostic{
			LinkIndex: d.Link,
			Source:    [3]int{d.Source.X, d.Source.Y, d.Source.Z},
			Target:    [3]int{d.Target.X, d.Target.Y, d.Target.Z},
			Reason:    d.Reason,
		})
	}
	return run
}
