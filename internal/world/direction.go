package world

import "fmt"

// Direction represents a cardinal direction.
// The numeric value doubles as the door index: North=0, East=1, South=2, West=3.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions in index order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Index returns the door index for the direction (0..3).
func (d Direction) Index() int {
	return int(d)
}

// DirectionFromIndex converts a door index back to a direction.
func DirectionFromIndex(i int) (Direction, error) {
	d := Direction(i)
	if !d.IsValid() {
		return d, fmt.Errorf("index %d: %w", i, ErrInvalidDirection)
	}
	return d, nil
}

// RotateCW returns the direction after a quarter turn clockwise.
// An invalid direction is returned unchanged so the fault surfaces at the next query.
func (d Direction) RotateCW() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 1) % 4
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the unit step for this direction, with +x east and +y south.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// DirectionFromVector converts a raw unit vector to a direction.
// Anything other than the four canonical vectors is rejected.
func DirectionFromVector(dx, dy int) (Direction, error) {
	switch {
	case dx == 0 && dy == -1:
		return North, nil
	case dx == 1 && dy == 0:
		return East, nil
	case dx == 0 && dy == 1:
		return South, nil
	case dx == -1 && dy == 0:
		return West, nil
	}
	return 0, fmt.Errorf("vector [%d, %d]: %w", dx, dy, ErrInvalidDirection)
}
