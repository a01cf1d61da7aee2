// Package maze loads maze descriptions: rooms on a regular 3D lattice, each
// tagged with atom labels, and the links (corridors) between grid-adjacent
// rooms.
//
// The Grid type owns the single linearization used across the generator to
// turn a coordinate into a room index. Placement, atom lookup and corridor
// endpoint resolution all go through Grid.Encode.
package maze
