package modelio

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/amazer/internal/maze"
	"github.com/banshee-data/amazer/internal/placement"
	"github.com/banshee-data/amazer/internal/simplicial"
	"github.com/banshee-data/amazer/internal/valuation"
)

// tinyComplex is one room made of a single labelled edge plus a corridor
// vertex, enough to check the layout by hand.
func tinyComplex() (*simplicial.Complex, *valuation.Valuation) {
	c := &simplicial.Complex{
		Points: []r3.Vec{{X: -6, Y: 0.5, Z: 60}, {X: 1e-3, Y: -0, Z: 2}},
		Simplices: []simplicial.Simplex{
			{ID: 0, Points: []int{0}, Room: 0, Corridor: simplicial.NoOwner},
			{ID: 1, Points: []int{0, 1}, Room: 0, Corridor: simplicial.NoOwner},
			{ID: 2, Points: []int{1}, Room: simplicial.NoOwner, Corridor: 0},
		},
		RoomSimplices: 2,
		Rooms:         1,
		Corridors:     1,
	}
	v := &valuation.Valuation{
		Names:  []string{`say "hi"`, "corridor"},
		Labels: [][]string{{`say "hi"`}, {`say "hi"`}, {"corridor"}},
		Matrix: [][]bool{{true, true, false}, {false, false, true}},
	}
	return c, v
}

func TestWriteModel_Layout(t *testing.T) {
	c, v := tinyComplex()
	var buf bytes.Buffer
	require.NoError(t, WriteModel(&buf, c, v))

	want := `{
"numberOfPoints": 2,
"coordinatesOfPoints": [
[-6,0.5,60],
[0.001,0,2]
],
"atomNames": ["say \"hi\"", "corridor"],
"simplexes": [
{"id": "s0", "points": [0], "atoms": ["say \"hi\""]},
{"id": "s1", "points": [0,1], "atoms": ["say \"hi\""]},
{"id": "s2", "points": [1], "atoms": ["corridor"]}
]
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteAtoms_Layout(t *testing.T) {
	_, v := tinyComplex()
	var buf bytes.Buffer
	require.NoError(t, WriteAtoms(&buf, v))

	want := `{
"say \"hi\"": [true,true,false],
"corridor": [false,false,true]
}
`
	assert.Equal(t, want, buf.String())
}

type modelFile struct {
	NumberOfPoints      int          `json:"numberOfPoints"`
	CoordinatesOfPoints [][3]float64 `json:"coordinatesOfPoints"`
	AtomNames           []string     `json:"atomNames"`
	Simplexes           []struct {
		ID     string   `json:"id"`
		Points []int    `json:"points"`
		Atoms  []string `json:"atoms"`
	} `json:"simplexes"`
}

func TestWrite_GoalMazeParsesBack(t *testing.T) {
	m := &maze.Maze{
		Grid: maze.Grid{X: 1, Y: 1, Z: 2},
		Nodes: []maze.Node{
			{Coord: maze.Coord{}},
			{Coord: maze.Coord{Z: 1}, Atoms: []string{"goal"}},
		},
		Links: []maze.Link{{Source: maze.Coord{}, Target: maze.Coord{Z: 1}}},
	}
	e, err := placement.NewEngine(placement.Options{Spacing: placement.DefaultSpacing, Workers: 1})
	require.NoError(t, err)
	c, _, err := e.Place(m)
	require.NoError(t, err)
	v, err := valuation.Propagate(c, valuation.FlagRooms(m), 1)
	require.NoError(t, err)

	var model, atoms bytes.Buffer
	require.NoError(t, WriteModel(&model, c, v))
	require.NoError(t, WriteAtoms(&atoms, v))

	var mf modelFile
	require.NoError(t, json.Unmarshal(model.Bytes(), &mf))
	assert.Equal(t, 66, mf.NumberOfPoints)
	assert.Len(t, mf.CoordinatesOfPoints, 66)
	assert.Equal(t, [3]float64{0, 0, 60}, mf.CoordinatesOfPoints[33])
	assert.Equal(t, []string{"goal", "corridor"}, mf.AtomNames)
	require.Len(t, mf.Simplexes, 755)
	for i, s := range mf.Simplexes {
		assert.Equal(t, c.Simplices[i].Name(), s.ID)
		for _, p := range s.Points {
			assert.Less(t, p, mf.NumberOfPoints)
		}
	}
	assert.Empty(t, mf.Simplexes[0].Atoms)
	assert.Equal(t, []string{"goal"}, mf.Simplexes[400].Atoms)
	assert.Equal(t, []string{"corridor"}, mf.Simplexes[754].Atoms)

	var af map[string][]bool
	require.NoError(t, json.Unmarshal(atoms.Bytes(), &af))
	require.Len(t, af, 2)
	for _, name := range mf.AtomNames {
		assert.Len(t, af[name], 755, name)
	}
	assert.True(t, af["goal"][365])
	assert.False(t, af["goal"][364])
	assert.False(t, af["goal"][730])
	assert.True(t, af["corridor"][730])

	// Identical input gives identical bytes.
	var again bytes.Buffer
	require.NoError(t, WriteModel(&again, c, v))
	assert.True(t, bytes.Equal(model.Bytes(), again.Bytes()))
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errors.New("disk full")
	}
	f.n--
	return len(p), nil
}

func TestWrite_ReportsWriterErrors(t *testing.T) {
	c, v := tinyComplex()

	err := WriteModel(&failingWriter{}, c, v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutput))
	assert.Contains(t, err.Error(), "model: disk full")

	err = WriteAtoms(&failingWriter{}, v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutput))
	assert.Contains(t, err.Error(), "atoms: disk full")
}

func TestWrite_RejectsMismatchedValuation(t *testing.T) {
	c, v := tinyComplex()
	v.Labels = v.Labels[:2]
	err := WriteModel(&bytes.Buffer{}, c, v)
	assert.True(t, errors.Is(err, ErrOutput))

	_, v = tinyComplex()
	v.Matrix = v.Matrix[:1]
	err = WriteAtoms(&bytes.Buffer{}, v)
	assert.True(t, errors.Is(err, ErrOutput))
}
