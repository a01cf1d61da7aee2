package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/amazer/internal/maze"
)

func TestAtomSet(t *testing.T) {
	s := NewAtomSet("b", "a", "b", "c")
	assert.Equal(t, []string{"b", "a", "c"}, s.Names())
	assert.Equal(t, 3, s.Len())

	i, ok := s.Index("c")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = s.Index("missing")
	assert.False(t, ok)

	assert.Equal(t, 1, s.Add("a"))
	assert.Equal(t, 3, s.Add("d"))

	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, "b", s.Names()[0])
}

func TestFlagRooms(t *testing.T) {
	m := &maze.Maze{
		Grid: maze.Grid{X: 2, Y: 1, Z: 2},
		Nodes: []maze.Node{
			{Coord: maze.Coord{X: 0, Z: 1}, Atoms: []string{"start"}},
			{Coord: maze.Coord{X: 1, Z: 0}, Atoms: []string{"goal", "start"}},
			{Coord: maze.Coord{X: 1, Z: 1}},
		},
	}

	f := FlagRooms(m)
	assert.Equal(t, []string{"start", "goal"}, f.Atoms.Names())

	// Rooms: (0,0,0)=0 (0,0,1)=1 (1,0,0)=2 (1,0,1)=3.
	assert.Nil(t, f.Labels(0))
	assert.Equal(t, []string{"start"}, f.Labels(1))
	assert.Equal(t, []string{"start", "goal"}, f.Labels(2))
	assert.Nil(t, f.Labels(3))

	assert.True(t, f.Has(1, 2))
	assert.False(t, f.Has(1, 1))
	assert.False(t, f.Has(0, 4))
	assert.False(t, f.Has(0, -1))
}
