package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/straightahead/internal/telemetry"
)

// Layout is the static configuration a World is built from.
type Layout struct {
	Tiles        [][]Tile  // Rows of tiles, indexed [row][col]
	PlayerStart  Position  // Initial player cell
	PlayerFacing Direction // Initial player facing
	Goal         Position  // Goal cell
}

// DefaultLayout returns the fixed 4x4 starting level.
func DefaultLayout() Layout {
	o := NewTile(DoorsOpen)
	h := NewTile(DoorsHorizontal)
	v := NewTile(DoorsVertical)

	return Layout{
		Tiles: [][]Tile{
			{o, o, o, h},
			{o, v, o, o},
			{o, o, v, o},
			{o, o, o, o},
		},
		PlayerStart:  Position{Col: 0, Row: 0},
		PlayerFacing: East,
		Goal:         Position{Col: 3, Row: 3},
	}
}

// World owns the grid, the player, and the goal.
type World struct {
	grid   *Grid
	player Player
	goal   Goal
}

// New builds a world from a layout. The player and goal must lie inside the
// grid and the player must face a valid direction.
func New(ctx context.Context, layout Layout) (*World, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.build")
	defer span.End()

	grid, err := NewGrid(layout.Tiles)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	start := layout.PlayerStart
	if !grid.InBounds(start.Row, start.Col) {
		err := fmt.Errorf("player start (%d, %d): %w", start.Col, start.Row, ErrOutOfBounds)
		span.RecordError(err)
		return nil, err
	}
	if !layout.PlayerFacing.IsValid() {
		err := fmt.Errorf("player facing %d: %w", int(layout.PlayerFacing), ErrInvalidDirection)
		span.RecordError(err)
		return nil, err
	}
	if !grid.InBounds(layout.Goal.Row, layout.Goal.Col) {
		err := fmt.Errorf("goal (%d, %d): %w", layout.Goal.Col, layout.Goal.Row, ErrOutOfBounds)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("grid.width", grid.Width()),
		attribute.Int("grid.height", grid.Height()),
		attribute.Int("player.col", start.Col),
		attribute.Int("player.row", start.Row),
		attribute.String("player.facing", layout.PlayerFacing.String()),
		attribute.Int("goal.col", layout.Goal.Col),
		attribute.Int("goal.row", layout.Goal.Row),
	)

	return &World{
		grid:   grid,
		player: Player{pos: start, facing: layout.PlayerFacing},
		goal:   Goal{pos: layout.Goal},
	}, nil
}

// Grid returns the world's grid.
func (w *World) Grid() *Grid {
	return w.grid
}

// Player returns the world's player.
func (w *World) Player() *Player {
	return &w.player
}

// Goal returns the world's goal.
func (w *World) Goal() *Goal {
	return &w.goal
}
