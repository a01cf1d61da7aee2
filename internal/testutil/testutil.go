// Package testutil provides the maze fixtures shared by the pipeline and
// command tests.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/banshee-data/amazer/internal/fsutil"
)

type coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type node struct {
	Coord coord    `json:"coord"`
	Atoms []string `json:"atoms"`
}

type link struct {
	Source coord `json:"source"`
	Target coord `json:"target"`
}

// MazeBuilder assembles a maze description in the input format.
type MazeBuilder struct {
	Nodes []node `json:"nodes"`
	Links []link `json:"links"`
}

// NewMaze returns an empty builder.
func NewMaze() *MazeBuilder {
	return &MazeBuilder{Nodes: []node{}, Links: []link{}}
}

// Room adds a node at (x,y,z) carrying atoms.
func (b *MazeBuilder) Room(x, y, z int, atoms ...string) *MazeBuilder {
	if atoms == nil {
		atoms = []string{}
	}
	b.Nodes = append(b.Nodes, node{Coord: coord{x, y, z}, Atoms: atoms})
	return b
}

// Link adds a link from one coordinate to another.
func (b *MazeBuilder) Link(from, to [3]int) *MazeBuilder {
	b.Links = append(b.Links, link{
		Source: coord{from[0], from[1], from[2]},
		Target: coord{to[0], to[1], to[2]},
	})
	return b
}

// JSON encodes the maze.
func (b *MazeBuilder) JSON() []byte {
	data, err := json.Marshal(b)
	if err != nil {
		panic(err)
	}
	return data
}

// GoalMaze is the 1x1x2 maze with one z link and "goal" on the far room.
func GoalMaze() *MazeBuilder {
	return NewMaze().
		Room(0, 0, 0).
		Room(0, 0, 1, "goal").
		Link([3]int{0, 0, 0}, [3]int{0, 0, 1})
}

// WriteMaze stores the encoded maze at path in fsys.
func WriteMaze(t *testing.T, fsys fsutil.FileSystem, path string, b *MazeBuilder) {
	t.Helper()
	if err := fsys.WriteFile(path, b.JSON(), 0644); err != nil {
		t.Fatalf("write maze %s: %v", path, err)
	}
}
