package placement

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/amazer/internal/maze"
	"github.com/banshee-data/amazer/internal/monitoring"
	"github.com/banshee-data/amazer/internal/simplicial"
)

func quietLogs(t *testing.T) {
	t.Helper()
	prev := monitoring.Logf
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.SetLogger(prev) })
}

func newEngine(t *testing.T, workers int) *Engine {
	t.Helper()
	e, err := NewEngine(Options{Spacing: DefaultSpacing, Workers: workers})
	require.NoError(t, err)
	return e
}

// lineMaze is a 1x1xn corridor of rooms linked along z.
func lineMaze(n int) *maze.Maze {
	m := &maze.Maze{Grid: maze.Grid{X: 1, Y: 1, Z: n}}
	for z := 0; z < n; z++ {
		m.Nodes = append(m.Nodes, maze.Node{Coord: maze.Coord{Z: z}})
		if z > 0 {
			m.Links = append(m.Links, maze.Link{
				Source: maze.Coord{Z: z - 1},
				Target: maze.Coord{Z: z},
			})
		}
	}
	return m
}

// cubeMaze is a 2x2x2 grid with one link along every axis.
func cubeMaze() *maze.Maze {
	m := &maze.Maze{Grid: maze.Grid{X: 2, Y: 2, Z: 2}}
	m.Grid.Each(func(_ int, c maze.Coord) {
		m.Nodes = append(m.Nodes, maze.Node{Coord: c})
	})
	m.Links = []maze.Link{
		{Source: maze.Coord{}, Target: maze.Coord{X: 1}},
		{Source: maze.Coord{X: 1}, Target: maze.Coord{X: 1, Y: 1}},
		{Source: maze.Coord{X: 1, Y: 1}, Target: maze.Coord{X: 1, Y: 1, Z: 1}},
	}
	return m
}

func TestNewEngine_RejectsSmallSpacing(t *testing.T) {
	_, err := NewEngine(Options{Spacing: simplicial.RoomExtent})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must exceed room extent")
}

func TestNewEngine_DefaultsWorkers(t *testing.T) {
	e := newEngine(t, 0)
	assert.Positive(t, e.opts.Workers)
	assert.Equal(t, 33, e.PointsPerRoom())
	assert.Equal(t, 365, e.SimplicesPerRoom())
	assert.Equal(t, 25, e.SimplicesPerCorridor())
}

func TestAxisOf(t *testing.T) {
	tests := []struct {
		name    string
		target  maze.Coord
		want    simplicial.Axis
		wantErr string
	}{
		{"x", maze.Coord{X: 2, Y: 1, Z: 1}, simplicial.AxisX, ""},
		{"y", maze.Coord{X: 1, Y: 2, Z: 1}, simplicial.AxisY, ""},
		{"z", maze.Coord{X: 1, Y: 1, Z: 2}, simplicial.AxisZ, ""},
		{"reverse", maze.Coord{X: 0, Y: 1, Z: 1}, 0, "higher-coordinate"},
		{"two steps", maze.Coord{X: 1, Y: 3, Z: 1}, 0, "2 steps"},
		{"two steps back", maze.Coord{X: 1, Y: 1, Z: -1}, 0, "2 steps"},
		{"diagonal", maze.Coord{X: 2, Y: 2, Z: 1}, 0, "2 axes"},
		{"self", maze.Coord{X: 1, Y: 1, Z: 1}, 0, "same room"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, err := AxisOf(maze.Link{Source: maze.Coord{X: 1, Y: 1, Z: 1}, Target: tt.target})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, axis)
		})
	}
}

func TestPlace_TwoRooms(t *testing.T) {
	c, diags, err := newEngine(t, 2).Place(lineMaze(2))
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Len(t, c.Points, 66)
	assert.Len(t, c.Simplices, 2*365+25)
	assert.Equal(t, 730, c.RoomSimplices)
	assert.Equal(t, 2, c.Rooms)
	assert.Equal(t, 1, c.Corridors)
	assert.Equal(t, [4]int{66, 252, 312, 125}, c.CountByDim())
	require.NoError(t, c.Verify())

	// Room 1 sits one spacing up the z axis.
	assert.Equal(t, c.Points[0].Z+DefaultSpacing, c.Points[33].Z)
	assert.Equal(t, c.Points[0].X, c.Points[33].X)
}

func TestPlace_OwnershipAndIndices(t *testing.T) {
	m := cubeMaze()
	c, diags, err := newEngine(t, 3).Place(m)
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.NoError(t, c.Verify())

	for i, s := range c.Simplices {
		require.Equal(t, i, s.ID)
		for _, p := range s.Points {
			require.Less(t, p, len(c.Points))
		}
		if i < c.RoomSimplices {
			assert.Equal(t, i/365, s.Room, "simplex %d", i)
			assert.False(t, s.IsCorridor())
		} else {
			assert.Equal(t, simplicial.NoOwner, s.Room)
			assert.Equal(t, (i-c.RoomSimplices)/25, s.Corridor)
		}
	}
}

func TestPlace_RoomPositions(t *testing.T) {
	m := cubeMaze()
	c, _, err := newEngine(t, 1).Place(m)
	require.NoError(t, err)

	m.Grid.Each(func(room int, coord maze.Coord) {
		centre := c.Points[room*33]
		assert.Equal(t, float64(coord.X)*DefaultSpacing, centre.X)
		assert.Equal(t, float64(coord.Y)*DefaultSpacing, centre.Y)
		assert.Equal(t, float64(coord.Z)*DefaultSpacing, centre.Z)
	})
}

func TestPlace_SkipsUnsupportedLinks(t *testing.T) {
	quietLogs(t)

	m := cubeMaze()
	m.Links = []maze.Link{
		{Source: maze.Coord{X: 1}, Target: maze.Coord{}},
		m.Links[0],
		{Source: maze.Coord{}, Target: maze.Coord{X: 1, Y: 1}},
		m.Links[2],
	}

	c, diags, err := newEngine(t, 4).Place(m)
	require.NoError(t, err)
	require.Len(t, diags, 2)

	assert.Equal(t, 0, diags[0].Link)
	assert.Equal(t, 2, diags[1].Link)
	assert.Equal(t, maze.Coord{X: 1, Y: 1}, diags[1].Target)
	for _, d := range diags {
		assert.True(t, errors.Is(d, ErrUnsupportedCorridor))
	}
	assert.Contains(t, diags[0].Error(), "link 0 (1,0,0) -> (0,0,0)")

	assert.Equal(t, 2, c.Corridors)
	assert.Len(t, c.Simplices, 8*365+2*25)
	require.NoError(t, c.Verify())
	last := c.Simplices[len(c.Simplices)-1]
	assert.Equal(t, 1, last.Corridor)
}

func TestPlace_WorkerCountDoesNotChangeOutput(t *testing.T) {
	m := lineMaze(roomsPerTask + 40)

	sequential, _, err := newEngine(t, 1).Place(m)
	require.NoError(t, err)
	parallel, _, err := newEngine(t, 8).Place(m)
	require.NoError(t, err)

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel placement differs (-seq +par):\n%s", diff)
	}
}

func TestPlace_EmptyGrid(t *testing.T) {
	_, _, err := newEngine(t, 1).Place(&maze.Maze{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, maze.ErrMalformedInput))
}

func TestPlace_OversizedGrid(t *testing.T) {
	m := &maze.Maze{Grid: maze.Grid{X: 1 << 20, Y: 1 << 20, Z: 1 << 20}}
	_, _, err := newEngine(t, 1).Place(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, maze.ErrMalformedInput))
	assert.Contains(t, err.Error(), "more than")
}

func TestPlace_LinkOutsideGridIsDiagnosed(t *testing.T) {
	quietLogs(t)
	m := &maze.Maze{
		Grid:  maze.Grid{X: 2, Y: 1, Z: 1},
		Nodes: []maze.Node{{Coord: maze.Coord{}}, {Coord: maze.Coord{X: 1}}},
		Links: []maze.Link{
			{Source: maze.Coord{}, Target: maze.Coord{Z: 1}},
			{Source: maze.Coord{}, Target: maze.Coord{X: 1}},
		},
	}

	c, diags, err := newEngine(t, 1).Place(m)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, 0, diags[0].Link)
	assert.Contains(t, diags[0].Reason, "outside 2x1x1 grid")
	assert.True(t, errors.Is(diags[0], ErrUnsupportedCorridor))
	assert.Equal(t, 1, c.Corridors)
	require.NoError(t, c.Verify())
}
