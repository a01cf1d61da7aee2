package simplicial

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// NoOwner marks the owner field that does not apply to a simplex: Room on a
// corridor simplex, Corridor on a room simplex.
const NoOwner = -1

// Simplex is a 0- to 3-simplex over global point indices.
// Its owner is recorded at creation time rather than derived from its ID.
type Simplex struct {
	ID       int
	Points   []int
	Room     int
	Corridor int
}

// Dim returns the simplex dimension (number of points minus one).
func (s Simplex) Dim() int { return len(s.Points) - 1 }

// IsCorridor reports whether the simplex belongs to a corridor.
func (s Simplex) IsCorridor() bool { return s.Corridor != NoOwner }

// Name is the identifier written to the model file.
func (s Simplex) Name() string { return fmt.Sprintf("s%d", s.ID) }

// Complex is the assembled model: points in global index order, room blocks
// in room-index order, then corridor blocks in link order.
type Complex struct {
	Points    []r3.Vec
	Simplices []Simplex

	// RoomSimplices is the number of room simplices; every simplex at or
	// beyond this position is a corridor simplex.
	RoomSimplices int
	Rooms         int
	Corridors     int
}

// CountByDim returns the number of simplices of each dimension.
func (c *Complex) CountByDim() [4]int {
	var n [4]int
	for _, s := range c.Simplices {
		n[s.Dim()]++
	}
	return n
}
