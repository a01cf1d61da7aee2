package simplicial

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis is the grid axis a corridor runs along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Unit returns the unit vector along a.
func (a Axis) Unit() r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: 1}
	case AxisY:
		return r3.Vec{Y: 1}
	default:
		return r3.Vec{Z: 1}
	}
}

// CorridorTemplate joins the outward window of a source room to the inward
// window of the next room along an axis. Pattern is expressed over the
// boundary cube 0..7: 0..3 are the source window, 4..7 the target window,
// with i and i+4 facing each other.
type CorridorTemplate struct {
	Pattern [][]int
	Windows [3]CorridorWindows
}

// CorridorWindows names the room-template point indices a corridor along one
// axis attaches to.
type CorridorWindows struct {
	Source [4]int // outward window of the lower-coordinate room
	Target [4]int // inward window of the higher-coordinate room
}

// local maps a boundary-cube index to a room-template point index plus the
// side it belongs to.
func (w CorridorWindows) local(v int) (point int, target bool) {
	if v < 4 {
		return w.Source[v], false
	}
	return w.Target[v-4], true
}

// corridorPattern: 4 straight edges, 4 diagonals, 12 triangles and 5
// tetrahedra filling the prism between two windows.
var corridorPattern = [][]int{
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{1, 4}, {1, 7}, {2, 4}, {2, 7},
	{0, 1, 4}, {1, 4, 5}, {1, 5, 7}, {1, 3, 7},
	{2, 3, 7}, {2, 6, 7}, {0, 2, 4}, {2, 4, 6},
	{1, 2, 4}, {1, 2, 7}, {1, 4, 7}, {2, 4, 7},
	{0, 1, 2, 4}, {1, 2, 3, 7}, {2, 4, 6, 7}, {1, 4, 5, 7}, {1, 2, 4, 7},
}

// NewCorridorTemplate returns the corridor pattern wired to the room
// template's windows.
func NewCorridorTemplate() *CorridorTemplate {
	pattern := cloneAll(corridorPattern)
	return &CorridorTemplate{
		Pattern: pattern,
		Windows: [3]CorridorWindows{
			AxisX: {Source: windowXPos, Target: windowXNeg},
			AxisY: {Source: windowYPos, Target: windowYNeg},
			AxisZ: {Source: windowZPos, Target: windowZNeg},
		},
	}
}

// NumSimplices is the number of simplices one corridor adds.
func (ct *CorridorTemplate) NumSimplices() int { return len(ct.Pattern) }

// Instantiate maps the pattern onto the global points of two rooms whose
// point blocks start at sourceBase and targetBase. The caller guarantees the
// target room is the source room's +1 neighbour along axis. IDs are
// assigned from firstID upward.
func (ct *CorridorTemplate) Instantiate(axis Axis, sourceBase, targetBase, corridor, firstID int) []Simplex {
	var global [8]int
	w := ct.Windows[axis]
	for v := range global {
		p, target := w.local(v)
		if target {
			global[v] = targetBase + p
		} else {
			global[v] = sourceBase + p
		}
	}

	simplices := make([]Simplex, len(ct.Pattern))
	for i, local := range ct.Pattern {
		pts := make([]int, len(local))
		for j, v := range local {
			pts[j] = global[v]
		}
		simplices[i] = Simplex{
			ID:       firstID + i,
			Points:   pts,
			Room:     NoOwner,
			Corridor: corridor,
		}
	}
	return simplices
}

// Validate checks the corridor against the room template for every axis:
// windows sit on the correct faces with facing points aligned, and two
// rooms spacing apart plus one corridor form a face-closed, non-degenerate
// complex.
func (ct *CorridorTemplate) Validate(room *Template, spacing float64) error {
	for _, local := range ct.Pattern {
		for _, p := range local {
			if p < 0 || p > 7 {
				return fmt.Errorf("corridor pattern %v references boundary point %d", local, p)
			}
		}
	}

	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		if err := ct.validateAxis(room, axis, spacing); err != nil {
			return fmt.Errorf("axis %s: %w", axis, err)
		}
	}
	return nil
}

func (ct *CorridorTemplate) validateAxis(room *Template, axis Axis, spacing float64) error {
	n := room.NumPoints()
	w := ct.Windows[axis]
	unit := axis.Unit()

	var lo, hi float64
	for _, p := range room.Points {
		d := r3.Dot(p, unit)
		lo = min(lo, d)
		hi = max(hi, d)
	}

	for i := range 4 {
		for _, p := range []int{w.Source[i], w.Target[i]} {
			if p < 0 || p >= n {
				return fmt.Errorf("window point %d outside room template", p)
			}
		}
		src := room.Points[w.Source[i]]
		dst := room.Points[w.Target[i]]
		if r3.Dot(src, unit) != hi {
			return fmt.Errorf("source window point %d is not on the outward face", w.Source[i])
		}
		if r3.Dot(dst, unit) != lo {
			return fmt.Errorf("target window point %d is not on the inward face", w.Target[i])
		}
		// facing points differ only along the axis
		offset := r3.Sub(src, dst)
		if offset != r3.Scale(hi-lo, unit) {
			return fmt.Errorf("window points %d and %d are not aligned", w.Source[i], w.Target[i])
		}
	}

	// two rooms and one corridor between them
	points := make([]r3.Vec, 0, 2*n)
	points = append(points, room.Points...)
	shift := r3.Scale(spacing, unit)
	for _, p := range room.Points {
		points = append(points, r3.Add(p, shift))
	}

	roomSimplices := room.all()
	simplices := make([][]int, 0, 2*len(roomSimplices)+len(ct.Pattern))
	simplices = append(simplices, roomSimplices...)
	for _, s := range roomSimplices {
		shifted := make([]int, len(s))
		for i, v := range s {
			shifted[i] = v + n
		}
		simplices = append(simplices, shifted)
	}
	for _, s := range ct.Instantiate(axis, 0, n, 0, 0) {
		simplices = append(simplices, s.Points)
	}

	if err := checkSimplices(simplices, len(points)); err != nil {
		return err
	}
	return checkNondegenerate(simplices[2*len(roomSimplices):], points)
}
