// Package valuation assigns atom labels to every simplex of a placed complex.
//
// Room flags are computed once per room from the maze nodes. Each room
// simplex then inherits the flags of its owning room, and each corridor
// simplex carries only the reserved corridor label.
package valuation

import "github.com/banshee-data/amazer/internal/maze"

// AtomSet is an ordered set of atom names. Order is insertion order.
type AtomSet struct {
	names []string
	index map[string]int
}

// NewAtomSet builds a set from names, dropping repeats.
func NewAtomSet(names ...string) *AtomSet {
	s := &AtomSet{index: make(map[string]int, len(names))}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name if absent and returns its position.
func (s *AtomSet) Add(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	s.index[name] = len(s.names)
	s.names = append(s.names, name)
	return len(s.names) - 1
}

// Index returns the position of name.
func (s *AtomSet) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

func (s *AtomSet) Len() int { return len(s.names) }

// Names returns a copy of the names in order.
func (s *AtomSet) Names() []string {
	return append([]string(nil), s.names...)
}

// RoomFlags records, for each declared atom, which rooms carry it.
type RoomFlags struct {
	Atoms *AtomSet
	flags [][]bool // [atom][room]
}

// FlagRooms computes per-room flags for every atom declared in m. Room
// indices come from m.Grid.Encode.
func FlagRooms(m *maze.Maze) *RoomFlags {
	atoms := NewAtomSet(m.Atoms()...)
	rooms := m.Grid.Rooms()

	flags := make([][]bool, atoms.Len())
	for i := range flags {
		flags[i] = make([]bool, rooms)
	}
	for _, n := range m.Nodes {
		room := m.Grid.Encode(n.Coord)
		for _, a := range n.Atoms {
			i, _ := atoms.Index(a)
			flags[i][room] = true
		}
	}
	return &RoomFlags{Atoms: atoms, flags: flags}
}

// Has reports whether room carries the atom at position atom.
func (f *RoomFlags) Has(atom, room int) bool {
	if room < 0 || room >= len(f.flags[atom]) {
		return false
	}
	return f.flags[atom][room]
}

// Labels returns the atom names carried by room, in atom order.
func (f *RoomFlags) Labels(room int) []string {
	var labels []string
	for i, name := range f.Atoms.names {
		if f.Has(i, room) {
			labels = append(labels, name)
		}
	}
	return labels
}
