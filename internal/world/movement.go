package world

import "fmt"

// MoveOutcome describes what happened on an advance attempt.
type MoveOutcome int

const (
	// Moved means the player stepped into the next cell.
	Moved MoveOutcome = iota
	// BlockedBounds means the next cell lies outside the grid.
	BlockedBounds
	// BlockedExit means the current tile has no door toward the facing.
	BlockedExit
	// BlockedEntry means the next tile has no door facing back at the player.
	BlockedEntry
)

// String returns a human-readable outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case BlockedBounds:
		return "blocked_bounds"
	case BlockedExit:
		return "blocked_exit"
	case BlockedEntry:
		return "blocked_entry"
	default:
		return "unknown"
	}
}

// Advance attempts to step the player one cell along its facing. The step
// happens only when both the current and the next tile have aligned doors.
// A blocked step leaves the world untouched and is not an error; an error is
// returned only when the player's facing is not a valid direction.
func (w *World) Advance() (MoveOutcome, error) {
	p := &w.player
	if !p.facing.IsValid() {
		return BlockedBounds, fmt.Errorf("advance with facing %d: %w", int(p.facing), ErrInvalidDirection)
	}

	next := p.pos.Step(p.facing)
	if next.Col < 0 || next.Row < 0 {
		return BlockedBounds, nil
	}
	if !w.grid.InBounds(next.Row, next.Col) {
		return BlockedBounds, nil
	}

	current, err := w.grid.TileAt(p.pos.Row, p.pos.Col)
	if err != nil {
		return BlockedBounds, err
	}
	open, err := current.IsOpen(p.facing)
	if err != nil {
		return BlockedExit, err
	}
	if !open {
		return BlockedExit, nil
	}

	target, err := w.grid.TileAt(next.Row, next.Col)
	if err != nil {
		return BlockedBounds, err
	}
	open, err = target.IsOpen(p.facing.Opposite())
	if err != nil {
		return BlockedEntry, err
	}
	if !open {
		return BlockedEntry, nil
	}

	p.forward()
	return Moved, nil
}
