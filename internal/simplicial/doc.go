// Package simplicial holds the simplicial-complex data model and the two
// static templates stamped across a maze: the room template (one grid
// cell's interior) and the corridor template (the simplices joining two
// adjacent rooms' boundary windows).
//
// Templates are plain data tables. They are checked once, before placement,
// for index range, duplicates, face closure and geometric degeneracy.
package simplicial
