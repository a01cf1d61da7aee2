package maze

import "fmt"

// CorridorAtom is the reserved label carried by every corridor simplex.
// Nodes may not declare it.
const CorridorAtom = "corridor"

// Coord is an integer grid position.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Sub returns c - o component-wise.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Node is a room position with the atoms declared for it.
type Node struct {
	Coord Coord
	Atoms []string
}

// Link joins two rooms. A well-formed link has Target = Source + 1 on exactly
// one axis; the loader only checks that both ends lie inside the grid and
// leaves the geometry check to corridor placement.
type Link struct {
	Source Coord
	Target Coord
}

// Maze is the loaded, immutable description.
type Maze struct {
	Nodes []Node
	Links []Link
	Grid  Grid
}

// Atoms returns the declared atom names in first-appearance order, without
// duplicates.
func (m *Maze) Atoms() []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range m.Nodes {
		for _, a := range n.Atoms {
			if !seen[a] {
				seen[a] = true
				names = append(names, a)
			}
		}
	}
	return names
}
