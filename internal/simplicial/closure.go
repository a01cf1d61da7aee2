package simplicial

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateEpsilon bounds the area/volume below which a triangle or
// tetrahedron is treated as flat.
const degenerateEpsilon = 1e-9

// faceKey identifies a simplex by its sorted vertex set, padded with -1.
type faceKey [4]int

func keyOf(points []int) faceKey {
	k := faceKey{-1, -1, -1, -1}
	copy(k[:], points)
	slices.Sort(k[:len(points)])
	return k
}

// facesOf returns the keys of the codimension-1 faces of points.
func facesOf(points []int) []faceKey {
	if len(points) < 2 {
		return nil
	}
	faces := make([]faceKey, 0, len(points))
	face := make([]int, 0, len(points)-1)
	for skip := range points {
		face = face[:0]
		for i, p := range points {
			if i != skip {
				face = append(face, p)
			}
		}
		faces = append(faces, keyOf(face))
	}
	return faces
}

// checkSimplices verifies that every simplex has 1 to 4 distinct vertices in
// [0, numPoints), that no vertex set appears twice, and that every
// codimension-1 face of every simplex is itself present.
func checkSimplices(simplices [][]int, numPoints int) error {
	present := make(map[faceKey]int, len(simplices))
	for i, s := range simplices {
		if len(s) < 1 || len(s) > 4 {
			return fmt.Errorf("simplex %d has %d points, want 1 to 4", i, len(s))
		}
		for _, p := range s {
			if p < 0 || p >= numPoints {
				return fmt.Errorf("simplex %d references point %d, have %d points", i, p, numPoints)
			}
		}
		k := keyOf(s)
		for j := 1; j < len(s); j++ {
			if k[j] == k[j-1] {
				return fmt.Errorf("simplex %d %v repeats point %d", i, s, k[j])
			}
		}
		if prev, ok := present[k]; ok {
			return fmt.Errorf("simplex %d %v duplicates simplex %d", i, s, prev)
		}
		present[k] = i
	}

	for i, s := range simplices {
		for _, f := range facesOf(s) {
			if _, ok := present[f]; !ok {
				return fmt.Errorf("simplex %d %v is missing face %v", i, s, trimKey(f))
			}
		}
	}
	return nil
}

func trimKey(k faceKey) []int {
	n := 0
	for n < len(k) && k[n] >= 0 {
		n++
	}
	return k[:n]
}

// checkNondegenerate rejects zero-length edges, flat triangles and flat
// tetrahedra.
func checkNondegenerate(simplices [][]int, points []r3.Vec) error {
	for i, s := range simplices {
		var size float64
		switch len(s) {
		case 1:
			continue
		case 2:
			size = r3.Norm(r3.Sub(points[s[1]], points[s[0]]))
		case 3:
			size = r3.Norm(r3.Cross(
				r3.Sub(points[s[1]], points[s[0]]),
				r3.Sub(points[s[2]], points[s[0]]),
			))
		case 4:
			size = r3.Dot(
				r3.Sub(points[s[1]], points[s[0]]),
				r3.Cross(
					r3.Sub(points[s[2]], points[s[0]]),
					r3.Sub(points[s[3]], points[s[0]]),
				),
			)
		}
		if math.Abs(size) < degenerateEpsilon {
			return fmt.Errorf("simplex %d %v is degenerate", i, s)
		}
	}
	return nil
}
