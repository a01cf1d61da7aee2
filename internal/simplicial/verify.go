package simplicial

import "fmt"

// Verify checks the assembled complex: IDs match positions, point indices
// are in range, room simplices come first in non-decreasing room order with
// corridor simplices after them, and the whole complex is face-closed.
func (c *Complex) Verify() error {
	raw := make([][]int, len(c.Simplices))
	lastRoom := 0
	for i, s := range c.Simplices {
		if s.ID != i {
			return fmt.Errorf("simplex at position %d has id %d", i, s.ID)
		}
		corridor := i >= c.RoomSimplices
		if corridor != s.IsCorridor() {
			return fmt.Errorf("simplex %d: corridor=%v but room block ends at %d", i, s.IsCorridor(), c.RoomSimplices)
		}
		if !corridor {
			if s.Room < lastRoom || s.Room >= c.Rooms {
				return fmt.Errorf("simplex %d: room %d out of order (previous %d, rooms %d)", i, s.Room, lastRoom, c.Rooms)
			}
			lastRoom = s.Room
		} else if s.Room != NoOwner {
			return fmt.Errorf("corridor simplex %d also claims room %d", i, s.Room)
		}
		raw[i] = s.Points
	}
	return checkSimplices(raw, len(c.Points))
}
