package maze

import (
	"fmt"
	"math/bits"
)

// MaxRooms caps the number of grid cells. Every room costs 33 points and 365
// simplices, so this keeps all point and simplex indices well inside int.
const MaxRooms = 1 << 20

// Grid holds the per-axis room counts of the lattice.
type Grid struct {
	X, Y, Z int
}

// Rooms is the number of cells in the grid.
func (g Grid) Rooms() int {
	return g.X * g.Y * g.Z
}

// CheckSize reports an error when the grid has a non-positive axis or more
// than MaxRooms cells.
func (g Grid) CheckSize() error {
	if g.X <= 0 || g.Y <= 0 || g.Z <= 0 {
		return fmt.Errorf("grid %dx%dx%d is empty", g.X, g.Y, g.Z)
	}
	hi, n := bits.Mul64(uint64(g.X), uint64(g.Y))
	if hi == 0 {
		hi, n = bits.Mul64(n, uint64(g.Z))
	}
	if hi != 0 || n > MaxRooms {
		return fmt.Errorf("grid %dx%dx%d has more than %d rooms", g.X, g.Y, g.Z, MaxRooms)
	}
	return nil
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.X &&
		c.Y >= 0 && c.Y < g.Y &&
		c.Z >= 0 && c.Z < g.Z
}

// Encode maps a coordinate to its room index, x-major then y then z.
func (g Grid) Encode(c Coord) int {
	return c.X*g.Y*g.Z + c.Y*g.Z + c.Z
}

// Decode is the inverse of Encode.
func (g Grid) Decode(room int) Coord {
	yz := g.Y * g.Z
	return Coord{
		X: room / yz,
		Y: (room % yz) / g.Z,
		Z: room % g.Z,
	}
}

// Each calls fn for every cell in room-index order (x outer, y middle,
// z inner).
func (g Grid) Each(fn func(room int, c Coord)) {
	for x := 0; x < g.X; x++ {
		for y := 0; y < g.Y; y++ {
			for z := 0; z < g.Z; z++ {
				c := Coord{X: x, Y: y, Z: z}
				fn(g.Encode(c), c)
			}
		}
	}
}

// gridFor sizes the grid to the maximum coordinate on each axis plus one.
func gridFor(nodes []Node) Grid {
	var g Grid
	for _, n := range nodes {
		g.X = max(g.X, n.Coord.X+1)
		g.Y = max(g.Y, n.Coord.Y+1)
		g.Z = max(g.Z, n.Coord.Z+1)
	}
	return g
}
