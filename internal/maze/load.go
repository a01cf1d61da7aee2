package maze

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/banshee-data/amazer/internal/fsutil"
)

// ErrMalformedInput is returned for any maze description that cannot be
// turned into a grid: bad JSON, missing or invalid coordinates, an empty node
// list, bad atom labels, or link endpoints outside the grid.
var ErrMalformedInput = errors.New("malformed maze input")

type rawCoord struct {
	X *json.Number `json:"x"`
	Y *json.Number `json:"y"`
	Z *json.Number `json:"z"`
}

type rawNode struct {
	Coord *rawCoord `json:"coord"`
	Atoms []string  `json:"atoms"`
}

type rawLink struct {
	Source *rawCoord `json:"source"`
	Target *rawCoord `json:"target"`
}

type rawMaze struct {
	Nodes []rawNode `json:"nodes"`
	Links []rawLink `json:"links"`
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// LoadFile reads and parses the maze description at path.
func LoadFile(fsys fsutil.FileSystem, path string) (*Maze, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load maze %s: %w", path, err)
	}
	return m, nil
}

// Load parses a maze description. Nodes sharing a coordinate are merged and
// their atoms unioned in declaration order.
func Load(r io.Reader) (*Maze, error) {
	var raw rawMaze
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, malformed("decode: %v", err)
	}
	if len(raw.Nodes) == 0 {
		return nil, malformed("no nodes")
	}

	m := &Maze{}
	index := make(map[Coord]int, len(raw.Nodes))
	for i, rn := range raw.Nodes {
		c, err := rn.Coord.parse()
		if err != nil {
			return nil, malformed("nodes[%d].coord: %v", i, err)
		}
		for j, a := range rn.Atoms {
			if a == "" {
				return nil, malformed("nodes[%d].atoms[%d]: empty label", i, j)
			}
			if a == CorridorAtom {
				return nil, malformed("nodes[%d].atoms[%d]: %q is reserved", i, j, CorridorAtom)
			}
		}

		if at, ok := index[c]; ok {
			m.Nodes[at].Atoms = appendMissing(m.Nodes[at].Atoms, rn.Atoms)
			continue
		}
		index[c] = len(m.Nodes)
		m.Nodes = append(m.Nodes, Node{Coord: c, Atoms: appendMissing(nil, rn.Atoms)})
	}
	m.Grid = gridFor(m.Nodes)
	if err := m.Grid.CheckSize(); err != nil {
		return nil, malformed("%v", err)
	}

	m.Links = make([]Link, 0, len(raw.Links))
	for i, rl := range raw.Links {
		src, err := rl.Source.parse()
		if err != nil {
			return nil, malformed("links[%d].source: %v", i, err)
		}
		dst, err := rl.Target.parse()
		if err != nil {
			return nil, malformed("links[%d].target: %v", i, err)
		}
		if !m.Grid.Contains(src) || !m.Grid.Contains(dst) {
			return nil, malformed("links[%d]: %v -> %v outside grid %dx%dx%d",
				i, src, dst, m.Grid.X, m.Grid.Y, m.Grid.Z)
		}
		m.Links = append(m.Links, Link{Source: src, Target: dst})
	}

	return m, nil
}

func appendMissing(dst, src []string) []string {
	for _, a := range src {
		found := false
		for _, have := range dst {
			if have == a {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, a)
		}
	}
	return dst
}

func (rc *rawCoord) parse() (Coord, error) {
	if rc == nil {
		return Coord{}, errors.New("missing coordinate")
	}
	x, err := axis("x", rc.X)
	if err != nil {
		return Coord{}, err
	}
	y, err := axis("y", rc.Y)
	if err != nil {
		return Coord{}, err
	}
	z, err := axis("z", rc.Z)
	if err != nil {
		return Coord{}, err
	}
	return Coord{X: x, Y: y, Z: z}, nil
}

func axis(name string, n *json.Number) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("missing %s", name)
	}
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%s=%s is not an integer", name, n.String())
	}
	if v < 0 {
		return 0, fmt.Errorf("%s=%d is negative", name, v)
	}
	if v >= MaxRooms {
		return 0, fmt.Errorf("%s=%d exceeds the grid limit of %d rooms", name, v, MaxRooms)
	}
	return int(v), nil
}
