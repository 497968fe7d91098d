package game

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/straightahead/internal/telemetry"
	"github.com/samdwyer/straightahead/internal/world"
)

// CuePlayer plays presentation cues for successful actions.
type CuePlayer interface {
	Moved()
	Rotated()
}

// Publisher receives a snapshot after every processed event.
type Publisher interface {
	Publish(world.Snapshot) error
}

// Hooks are optional collaborators of a session. Nil fields are ignored.
type Hooks struct {
	Cues      CuePlayer
	Publisher Publisher
	Tracer    trace.Tracer // Defaults to telemetry.Tracer("session")
}

// framePublishInterval is the minimum animation time between snapshots
// published for frame events alone.
const framePublishInterval = 250 * time.Millisecond

// Session drives one world in response to discrete input events. It is not
// safe for concurrent use; the game loop is its only caller.
type Session struct {
	world     *world.World
	hooks     Hooks
	tracer    trace.Tracer
	goalSpeed float64
	moves     int
	rotations int
	unsent    time.Duration // animation time since the last frame publish
}

// NewSession creates a session around an existing world.
func NewSession(w *world.World, goalSpeed float64, hooks Hooks) *Session {
	tracer := hooks.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("session")
	}
	return &Session{
		world:     w,
		hooks:     hooks,
		tracer:    tracer,
		goalSpeed: goalSpeed,
	}
}

// World returns the session's world for read-only presentation.
func (s *Session) World() *world.World {
	return s.world
}

// Advance steps the player forward if the doors allow it.
func (s *Session) Advance(ctx context.Context) (world.MoveOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "session.advance")
	defer span.End()

	from := s.world.Player().Position()
	outcome, err := s.world.Advance()
	to := s.world.Player().Position()

	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.String("facing", s.world.Player().Facing().String()),
		attribute.Int("from.col", from.Col),
		attribute.Int("from.row", from.Row),
		attribute.Int("to.col", to.Col),
		attribute.Int("to.row", to.Row),
	)
	if err != nil {
		span.RecordError(err)
		return outcome, err
	}

	if outcome != world.Moved {
		return outcome, nil
	}

	s.moves++
	if s.hooks.Cues != nil {
		s.hooks.Cues.Moved()
	}
	s.publish(ctx)
	return outcome, nil
}

// Rotate turns the tile at (row, col), and the player with it if it stands there.
func (s *Session) Rotate(ctx context.Context, row, col int) error {
	ctx, span := s.tracer.Start(ctx, "session.rotate")
	defer span.End()

	span.SetAttributes(
		attribute.Int("row", row),
		attribute.Int("col", col),
	)

	turned, err := s.world.Rotate(row, col)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("rotate: %w", err)
	}

	tile, _ := s.world.Grid().TileAt(row, col)
	span.SetAttributes(
		attribute.Int("tile.rotation", tile.Rotation()),
		attribute.Int("tile.turns", tile.Turns()),
		attribute.Bool("player_rotated", turned),
	)

	s.rotations++
	if s.hooks.Cues != nil {
		s.hooks.Cues.Rotated()
	}
	s.publish(ctx)
	return nil
}

// Frame advances time-driven decoration by dt. The goal angle is part of the
// snapshot, so it is published too, at most once per framePublishInterval.
func (s *Session) Frame(ctx context.Context, dt time.Duration) {
	s.world.Goal().Spin(s.goalSpeed * dt.Seconds())

	s.unsent += dt
	if s.unsent < framePublishInterval {
		return
	}
	s.unsent = 0
	s.publish(ctx)
}

// Moves returns the number of successful steps.
func (s *Session) Moves() int {
	return s.moves
}

// Rotations returns the number of tiles turned.
func (s *Session) Rotations() int {
	return s.rotations
}

// Publish sends the current snapshot to the publisher, if any.
func (s *Session) Publish(ctx context.Context) {
	s.publish(ctx)
}

func (s *Session) publish(ctx context.Context) {
	if s.hooks.Publisher == nil {
		return
	}
	if err := s.hooks.Publisher.Publish(s.world.Snapshot()); err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
	}
}
