// Package placement stamps the room template at every grid cell and the
// corridor template at every supported link, producing the global complex.
package placement

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/amazer/internal/maze"
	"github.com/banshee-data/amazer/internal/monitoring"
	"github.com/banshee-data/amazer/internal/simplicial"
)

// DefaultSpacing is the distance between the centres of adjacent rooms.
const DefaultSpacing = 60.0

// roomsPerTask bounds how many rooms one placement goroutine stamps.
const roomsPerTask = 256

// Options configures an Engine.
type Options struct {
	Spacing float64 // distance between adjacent room centres
	Workers int     // max concurrent placement tasks; <=0 means NumCPU
}

// Engine holds the validated templates.
type Engine struct {
	room     *simplicial.Template
	corridor *simplicial.CorridorTemplate
	opts     Options
}

// NewEngine validates both templates for the configured spacing and returns
// an engine ready to place mazes.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Spacing <= simplicial.RoomExtent {
		return nil, fmt.Errorf("room spacing %g must exceed room extent %d", opts.Spacing, simplicial.RoomExtent)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	room := simplicial.RoomTemplate()
	if err := room.Validate(); err != nil {
		return nil, fmt.Errorf("room template: %w", err)
	}
	corridor := simplicial.NewCorridorTemplate()
	if err := corridor.Validate(room, opts.Spacing); err != nil {
		return nil, fmt.Errorf("corridor template: %w", err)
	}

	return &Engine{room: room, corridor: corridor, opts: opts}, nil
}

// PointsPerRoom is the size of each room's point block.
func (e *Engine) PointsPerRoom() int { return e.room.NumPoints() }

// SimplicesPerRoom is the size of each room's simplex block.
func (e *Engine) SimplicesPerRoom() int { return e.room.NumSimplices() }

// SimplicesPerCorridor is the size of each corridor's simplex block.
func (e *Engine) SimplicesPerCorridor() int { return e.corridor.NumSimplices() }

// AxisOf returns the axis a link runs along. The link must step +1 on exactly
// one axis from source to target.
func AxisOf(l maze.Link) (simplicial.Axis, error) {
	d := l.Target.Sub(l.Source)
	switch {
	case d == maze.Coord{X: 1}:
		return simplicial.AxisX, nil
	case d == maze.Coord{Y: 1}:
		return simplicial.AxisY, nil
	case d == maze.Coord{Z: 1}:
		return simplicial.AxisZ, nil
	}

	var moved, dist int
	for _, v := range []int{d.X, d.Y, d.Z} {
		if v != 0 {
			moved++
			dist = v
		}
	}
	switch {
	case moved == 0:
		return 0, fmt.Errorf("source and target are the same room")
	case moved > 1:
		return 0, fmt.Errorf("endpoints differ on %d axes", moved)
	case dist == -1:
		return 0, fmt.Errorf("source is the higher-coordinate end")
	default:
		return 0, fmt.Errorf("endpoints are %d steps apart", abs(dist))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type corridorJob struct {
	axis   simplicial.Axis
	source int
	target int
}

// Place builds the complex for m. Room blocks are laid out by room index;
// corridor blocks follow in link order, skipping links AxisOf rejects. The
// rejected links are returned as diagnostics, never as the error.
func (e *Engine) Place(m *maze.Maze) (*simplicial.Complex, []*CorridorError, error) {
	if m == nil {
		return nil, nil, fmt.Errorf("%w: nil maze", maze.ErrMalformedInput)
	}
	grid := m.Grid
	if err := grid.CheckSize(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", maze.ErrMalformedInput, err)
	}

	var diags []*CorridorError
	jobs := make([]corridorJob, 0, len(m.Links))
	for i, l := range m.Links {
		axis, err := AxisOf(l)
		if err == nil && !(grid.Contains(l.Source) && grid.Contains(l.Target)) {
			err = fmt.Errorf("endpoint outside %dx%dx%d grid", grid.X, grid.Y, grid.Z)
		}
		if err != nil {
			ce := &CorridorError{Link: i, Source: l.Source, Target: l.Target, Reason: err.Error()}
			monitoring.Logf("placement: skipping %v", ce)
			diags = append(diags, ce)
			continue
		}
		jobs = append(jobs, corridorJob{
			axis:   axis,
			source: grid.Encode(l.Source),
			target: grid.Encode(l.Target),
		})
	}

	rooms := grid.Rooms()
	pointsPerRoom := e.room.NumPoints()
	perRoom := e.room.NumSimplices()
	perCorridor := e.corridor.NumSimplices()
	roomSimplices := rooms * perRoom

	c := &simplicial.Complex{
		Points:        make([]r3.Vec, rooms*pointsPerRoom),
		Simplices:     make([]simplicial.Simplex, roomSimplices+len(jobs)*perCorridor),
		RoomSimplices: roomSimplices,
		Rooms:         rooms,
		Corridors:     len(jobs),
	}

	// Every task writes a disjoint, precomputed range of c.Points and
	// c.Simplices.
	var g errgroup.Group
	g.SetLimit(e.opts.Workers)

	for first := 0; first < rooms; first += roomsPerTask {
		last := min(first+roomsPerTask, rooms)
		g.Go(func() error {
			for room := first; room < last; room++ {
				coord := grid.Decode(room)
				offset := r3.Scale(e.opts.Spacing, r3.Vec{
					X: float64(coord.X),
					Y: float64(coord.Y),
					Z: float64(coord.Z),
				})
				pts, simplices := e.room.Instantiate(room, offset)
				copy(c.Points[room*pointsPerRoom:], pts)
				copy(c.Simplices[room*perRoom:], simplices)
			}
			return nil
		})
	}

	g.Go(func() error {
		for i, job := range jobs {
			firstID := roomSimplices + i*perCorridor
			simplices := e.corridor.Instantiate(job.axis,
				job.source*pointsPerRoom, job.target*pointsPerRoom, i, firstID)
			copy(c.Simplices[firstID:], simplices)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, diags, err
	}
	return c, diags, nil
}
