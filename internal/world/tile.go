// Package world provides the puzzle grid, its rotating door tiles, and the
// movement and rotation rules that act on them.
package world

import "fmt"

// Door layouts used by the default level.
var (
	// DoorsOpen has a door on every side.
	DoorsOpen = [4]bool{true, true, true, true}
	// DoorsHorizontal has doors on the east and west sides.
	DoorsHorizontal = [4]bool{false, true, false, true}
	// DoorsVertical has doors on the north and south sides.
	DoorsVertical = [4]bool{true, false, true, false}
)

// Tile represents a single grid cell with four doors.
// Doors are indexed by the tile's unrotated local direction and never change;
// only the rotation does.
type Tile struct {
	doors    [4]bool
	rotation int // quarter turns clockwise, kept in 0..3
	turns    int // total quarter turns applied since creation
}

// NewTile creates an unrotated tile with the given doors.
func NewTile(doors [4]bool) Tile {
	return Tile{doors: doors}
}

// Doors returns the tile's doors in local (unrotated) order.
func (t *Tile) Doors() [4]bool {
	return t.doors
}

// Rotation returns the tile's rotation in quarter turns, reduced to 0..3.
func (t *Tile) Rotation() int {
	return t.rotation
}

// Turns returns the number of quarter turns applied since the tile was created.
func (t *Tile) Turns() int {
	return t.turns
}

// IsOpen reports whether the tile can be crossed in the given global direction.
func (t *Tile) IsOpen(d Direction) (bool, error) {
	if !d.IsValid() {
		return false, fmt.Errorf("tile door query %d: %w", int(d), ErrInvalidDirection)
	}
	return t.doors[(d.Index()+t.rotation)%4], nil
}

// RotateCW turns the tile a quarter turn clockwise.
func (t *Tile) RotateCW() {
	t.rotation = (t.rotation + 1) % 4
	t.turns++
}

// OpenDirections returns the global directions the tile can currently be crossed in.
func (t *Tile) OpenDirections() []Direction {
	open := make([]Direction, 0, 4)
	for _, d := range AllDirections() {
		if t.doors[(d.Index()+t.rotation)%4] {
			open = append(open, d)
		}
	}
	return open
}
