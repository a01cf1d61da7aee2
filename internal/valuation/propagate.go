package valuation

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/banshee-data/amazer/internal/maze"
	"github.com/banshee-data/amazer/internal/simplicial"
)

// Valuation is the full labelling of a complex.
type Valuation struct {
	// Names lists the declared atoms in first-appearance order followed by
	// maze.CorridorAtom.
	Names []string

	// Labels holds the atom names carried by each simplex, indexed by simplex
	// position. Simplices of the same room share one slice; treat as
	// read-only.
	Labels [][]string

	// Matrix holds one row per entry of Names with one value per simplex.
	Matrix [][]bool
}

// Propagate labels every simplex of c from the room flags. Rows of the dense
// matrix are filled concurrently, at most workers at a time.
func Propagate(c *simplicial.Complex, flags *RoomFlags, workers int) (*Valuation, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	roomLabels := make([][]string, c.Rooms)
	for room := range roomLabels {
		roomLabels[room] = flags.Labels(room)
	}
	corridorLabels := []string{maze.CorridorAtom}

	labels := make([][]string, len(c.Simplices))
	for i, s := range c.Simplices {
		if s.IsCorridor() {
			labels[i] = corridorLabels
			continue
		}
		if s.Room < 0 || s.Room >= c.Rooms {
			return nil, fmt.Errorf("simplex %s: owner room %d outside [0,%d)", s.Name(), s.Room, c.Rooms)
		}
		labels[i] = roomLabels[s.Room]
	}

	declared := flags.Atoms.Len()
	matrix := make([][]bool, declared+1)

	var g errgroup.Group
	g.SetLimit(workers)
	for atom := range matrix {
		g.Go(func() error {
			row := make([]bool, len(c.Simplices))
			for i, s := range c.Simplices {
				if atom == declared {
					row[i] = s.IsCorridor()
				} else {
					row[i] = !s.IsCorridor() && flags.Has(atom, s.Room)
				}
			}
			matrix[atom] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Valuation{
		Names:  append(flags.Atoms.Names(), maze.CorridorAtom),
		Labels: labels,
		Matrix: matrix,
	}, nil
}

// Row returns the matrix row for name.
func (v *Valuation) Row(name string) ([]bool, bool) {
	for i, n := range v.Names {
		if n == name {
			return v.Matrix[i], true
		}
	}
	return nil, false
}
