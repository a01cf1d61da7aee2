package simplicial

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Template is a local simplicial complex over point indices 0..N-1, split
// by dimension.
type Template struct {
	Points    []r3.Vec
	Simplices [4][][]int
}

// NumPoints is the number of points one instantiation adds.
func (t *Template) NumPoints() int { return len(t.Points) }

// NumSimplices is the number of simplices one instantiation adds.
func (t *Template) NumSimplices() int {
	n := 0
	for _, byDim := range t.Simplices {
		n += len(byDim)
	}
	return n
}

// all flattens the simplices in emission order: dimension 0 first.
func (t *Template) all() [][]int {
	out := make([][]int, 0, t.NumSimplices())
	for _, byDim := range t.Simplices {
		out = append(out, byDim...)
	}
	return out
}

// Validate checks that every simplex sits in the list matching its
// dimension, that the template is face-closed, and that no simplex is
// geometrically degenerate.
func (t *Template) Validate() error {
	for dim, byDim := range t.Simplices {
		for i, s := range byDim {
			if len(s) != dim+1 {
				return fmt.Errorf("dimension %d simplex %d %v has %d points", dim, i, s, len(s))
			}
		}
	}
	all := t.all()
	if err := checkSimplices(all, len(t.Points)); err != nil {
		return err
	}
	return checkNondegenerate(all, t.Points)
}

// Instantiate stamps the template for one room: points are translated by
// translation and every local vertex index is shifted by
// room*NumPoints(). Simplex IDs start at room*NumSimplices().
func (t *Template) Instantiate(room int, translation r3.Vec) ([]r3.Vec, []Simplex) {
	points := make([]r3.Vec, len(t.Points))
	for i, p := range t.Points {
		points[i] = r3.Add(p, translation)
	}

	pointBase := room * t.NumPoints()
	id := room * t.NumSimplices()
	simplices := make([]Simplex, 0, t.NumSimplices())
	for _, byDim := range t.Simplices {
		for _, local := range byDim {
			global := make([]int, len(local))
			for i, v := range local {
				global[i] = v + pointBase
			}
			simplices = append(simplices, Simplex{
				ID:       id,
				Points:   global,
				Room:     room,
				Corridor: NoOwner,
			})
			id++
		}
	}
	return points, simplices
}
