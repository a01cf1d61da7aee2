package simplicial

import "gonum.org/v1/gonum/spatial/r3"

// roomHalfWidth is the distance from a room's centre to each cube face.
// Every face carries a square window of half-width 2.
const roomHalfWidth = 6

// RoomExtent is the full edge length of a room; rooms closer than this
// would overlap.
const RoomExtent = 2 * roomHalfWidth

// Window point indices of the room template. Each window lists its four
// points in the order the corridor template expects.
var (
	windowXNeg = [4]int{9, 10, 11, 12}
	windowXPos = [4]int{13, 14, 15, 16}
	windowYNeg = [4]int{17, 18, 19, 20}
	windowYPos = [4]int{21, 22, 23, 24}
	windowZNeg = [4]int{25, 26, 27, 28}
	windowZPos = [4]int{29, 30, 31, 32}
)

var roomPoints = []r3.Vec{
	{X: 0, Y: 0, Z: 0}, // centre

	// cube corners
	{X: -6, Y: -6, Z: -6}, {X: -6, Y: -6, Z: 6}, {X: -6, Y: 6, Z: -6}, {X: -6, Y: 6, Z: 6},
	{X: 6, Y: -6, Z: -6}, {X: 6, Y: -6, Z: 6}, {X: 6, Y: 6, Z: -6}, {X: 6, Y: 6, Z: 6},

	// windows: x-, x+, y-, y+, z-, z+
	{X: -6, Y: -2, Z: -2}, {X: -6, Y: -2, Z: 2}, {X: -6, Y: 2, Z: -2}, {X: -6, Y: 2, Z: 2},
	{X: 6, Y: -2, Z: -2}, {X: 6, Y: -2, Z: 2}, {X: 6, Y: 2, Z: -2}, {X: 6, Y: 2, Z: 2},
	{X: -2, Y: -6, Z: -2}, {X: -2, Y: -6, Z: 2}, {X: 2, Y: -6, Z: -2}, {X: 2, Y: -6, Z: 2},
	{X: -2, Y: 6, Z: -2}, {X: -2, Y: 6, Z: 2}, {X: 2, Y: 6, Z: -2}, {X: 2, Y: 6, Z: 2},
	{X: -2, Y: -2, Z: -6}, {X: -2, Y: 2, Z: -6}, {X: 2, Y: -2, Z: -6}, {X: 2, Y: 2, Z: -6},
	{X: -2, Y: -2, Z: 6}, {X: -2, Y: 2, Z: 6}, {X: 2, Y: -2, Z: 6}, {X: 2, Y: 2, Z: 6},
}

// surfaceEdges triangulates the cube surface: the 12 cube edges, each
// window's square plus one diagonal, and the spokes joining each window to
// the corners of its face.
var surfaceEdges = [][]int{
	{1, 2}, {2, 6}, {6, 5}, {5, 1},
	{1, 3}, {2, 4}, {5, 7}, {6, 8},
	{3, 4}, {4, 8}, {8, 7}, {7, 3},
	{9, 10}, {10, 12}, {12, 11}, {11, 9}, {9, 12},
	{13, 14}, {14, 16}, {16, 15}, {15, 13}, {14, 15},
	{17, 18}, {18, 20}, {20, 19}, {19, 17}, {17, 20},
	{21, 22}, {22, 24}, {24, 23}, {23, 21}, {22, 23},
	{25, 26}, {26, 28}, {28, 27}, {27, 25}, {25, 28},
	{29, 30}, {30, 32}, {32, 31}, {31, 29}, {30, 31},
	{1, 9}, {2, 10}, {4, 12}, {3, 11}, // x-
	{1, 10}, {2, 12}, {4, 11}, {3, 9},
	{5, 13}, {6, 14}, {7, 15}, {8, 16}, // x+
	{5, 14}, {6, 16}, {8, 15}, {7, 13},
	{1, 17}, {2, 18}, {6, 20}, {5, 19}, // y-
	{1, 18}, {2, 20}, {6, 19}, {5, 17},
	{3, 21}, {4, 22}, {8, 24}, {7, 23}, // y+
	{3, 22}, {4, 24}, {8, 23}, {7, 21},
	{1, 25}, {3, 26}, {7, 28}, {5, 27}, // z-
	{1, 26}, {3, 28}, {7, 27}, {5, 25},
	{2, 29}, {4, 30}, {8, 32}, {6, 31}, // z+
	{2, 30}, {4, 32}, {8, 31}, {6, 29},
}

// surfaceTriangles lists, per face, the two window triangles followed by
// the eight triangles between window and face border.
var surfaceTriangles = [][]int{
	{9, 10, 12}, {9, 11, 12}, // x-
	{1, 2, 10}, {1, 9, 10}, {2, 4, 12}, {2, 10, 12},
	{4, 3, 11}, {4, 12, 11}, {3, 1, 9}, {3, 11, 9},
	{13, 14, 15}, {14, 15, 16}, // x+
	{5, 6, 14}, {5, 13, 14}, {6, 8, 16}, {6, 14, 16},
	{8, 7, 15}, {8, 15, 16}, {7, 5, 13}, {7, 13, 15},
	{17, 18, 20}, {17, 19, 20}, // y-
	{1, 2, 18}, {1, 17, 18}, {2, 6, 20}, {2, 18, 20},
	{6, 5, 19}, {6, 19, 20}, {5, 1, 17}, {5, 17, 19},
	{21, 22, 23}, {22, 23, 24}, // y+
	{3, 4, 22}, {3, 21, 22}, {4, 8, 24}, {4, 22, 24},
	{8, 7, 23}, {8, 23, 24}, {7, 3, 21}, {7, 21, 23},
	{25, 26, 28}, {25, 27, 28}, // z-
	{1, 3, 26}, {1, 25, 26}, {3, 7, 28}, {3, 26, 28},
	{7, 5, 27}, {7, 27, 28}, {5, 1, 25}, {5, 25, 27},
	{29, 30, 31}, {30, 31, 32}, // z+
	{2, 4, 30}, {2, 29, 30}, {4, 8, 32}, {4, 30, 32},
	{8, 6, 31}, {8, 31, 32}, {6, 2, 29}, {6, 29, 31},
}

// coneOver prepends apex to each boundary simplex.
func coneOver(apex int, boundary [][]int) [][]int {
	out := make([][]int, len(boundary))
	for i, b := range boundary {
		out[i] = append([]int{apex}, b...)
	}
	return out
}

// RoomTemplate returns the room cell: the triangulated cube surface coned
// from the centre point. 33 points and 365 simplices (33 vertices, 122 edges,
// 150 triangles, 60 tetrahedra). Each call returns a fresh copy.
func RoomTemplate() *Template {
	const centre = 0

	vertices := make([][]int, len(roomPoints))
	surfacePoints := make([][]int, 0, len(roomPoints)-1)
	for i := range roomPoints {
		vertices[i] = []int{i}
		if i != centre {
			surfacePoints = append(surfacePoints, []int{i})
		}
	}

	points := make([]r3.Vec, len(roomPoints))
	copy(points, roomPoints)

	return &Template{
		Points: points,
		Simplices: [4][][]int{
			vertices,
			append(coneOver(centre, surfacePoints), cloneAll(surfaceEdges)...),
			append(coneOver(centre, surfaceEdges), cloneAll(surfaceTriangles)...),
			coneOver(centre, surfaceTriangles),
		},
	}
}

func cloneAll(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i, s := range in {
		out[i] = append([]int(nil), s...)
	}
	return out
}
