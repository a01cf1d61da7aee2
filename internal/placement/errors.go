package placement

import (
	"errors"
	"fmt"

	"github.com/banshee-data/amazer/internal/maze"
)

// ErrUnsupportedCorridor marks a link that cannot be stitched: its endpoints
// are not exactly one step apart on exactly one axis, the source is not the
// lower-coordinate end, or an endpoint lies outside the grid.
var ErrUnsupportedCorridor = errors.New("unsupported corridor geometry")

// CorridorError describes one rejected link. Placement collects these and
// carries on with the remaining links.
type CorridorError struct {
	Link   int // index into maze.Links
	Source maze.Coord
	Target maze.Coord
	Reason string
}

func (e *CorridorError) Error() string {
	return fmt.Sprintf("link %d %v -> %v: %s", e.Link, e.Source, e.Target, e.Reason)
}

func (e *CorridorError) Unwrap() error { return ErrUnsupportedCorridor }
