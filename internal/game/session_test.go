package game

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/straightahead/internal/world"
)

type fakeCues struct {
	moved   int
	rotated int
}

func (f *fakeCues) Moved()   { f.moved++ }
func (f *fakeCues) Rotated() { f.rotated++ }

type fakePublisher struct {
	snaps []world.Snapshot
}

func (f *fakePublisher) Publish(s world.Snapshot) error {
	f.snaps = append(f.snaps, s)
	return nil
}

type sessionFixture struct {
	session  *Session
	cues     *fakeCues
	pub      *fakePublisher
	recorder *tracetest.SpanRecorder
}

func newSessionFixture(t *testing.T, layout world.Layout) *sessionFixture {
	t.Helper()
	w, err := world.New(context.Background(), layout)
	if err != nil {
		t.Fatalf("world.New() returned error: %v", err)
	}

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	f := &sessionFixture{
		cues:     &fakeCues{},
		pub:      &fakePublisher{},
		recorder: recorder,
	}
	f.session = NewSession(w, 2.0, Hooks{Cues: f.cues, Publisher: f.pub, Tracer: tp.Tracer("test")})
	return f
}

// lastSpanAttr returns an attribute of the most recent ended span with the given name.
func (f *sessionFixture) lastSpanAttr(t *testing.T, name string, key attribute.Key) attribute.Value {
	t.Helper()
	spans := f.recorder.Ended()
	for i := len(spans) - 1; i >= 0; i-- {
		if spans[i].Name() != name {
			continue
		}
		for _, kv := range spans[i].Attributes() {
			if kv.Key == key {
				return kv.Value
			}
		}
		t.Fatalf("span %s has no attribute %s", name, key)
	}
	t.Fatalf("no span named %s", name)
	return attribute.Value{}
}

func TestSessionAdvanceMoves(t *testing.T) {
	f := newSessionFixture(t, world.DefaultLayout())

	outcome, err := f.session.Advance(context.Background())
	if err != nil {
		t.Fatalf("Advance() returned error: %v", err)
	}
	if outcome != world.Moved {
		t.Errorf("Advance() = %v, want moved", outcome)
	}
	if f.session.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", f.session.Moves())
	}
	if f.cues.moved != 1 {
		t.Errorf("move cues = %d, want 1", f.cues.moved)
	}
	if len(f.pub.snaps) != 1 || f.pub.snaps[0].Player.Col != 1 {
		t.Errorf("published %+v, want one snapshot with player at col 1", f.pub.snaps)
	}
	if got := f.lastSpanAttr(t, "session.advance", "outcome").AsString(); got != "moved" {
		t.Errorf("span outcome = %q, want %q", got, "moved")
	}
	if got := f.lastSpanAttr(t, "session.advance", "to.col").AsInt64(); got != 1 {
		t.Errorf("span to.col = %d, want 1", got)
	}
}

func TestSessionBlockedAdvanceIsSilent(t *testing.T) {
	f := newSessionFixture(t, world.Layout{
		Tiles:        [][]world.Tile{{world.NewTile(world.DoorsOpen)}},
		PlayerFacing: world.West,
	})

	outcome, err := f.session.Advance(context.Background())
	if err != nil {
		t.Fatalf("Advance() returned error: %v", err)
	}
	if outcome != world.BlockedBounds {
		t.Errorf("Advance() = %v, want blocked_bounds", outcome)
	}
	if f.session.Moves() != 0 || f.cues.moved != 0 || len(f.pub.snaps) != 0 {
		t.Errorf("blocked move had effects: moves=%d cues=%d published=%d",
			f.session.Moves(), f.cues.moved, len(f.pub.snaps))
	}
	if got := f.lastSpanAttr(t, "session.advance", "outcome").AsString(); got != "blocked_bounds" {
		t.Errorf("span outcome = %q, want %q", got, "blocked_bounds")
	}
}

func TestSessionRotateUnderPlayer(t *testing.T) {
	f := newSessionFixture(t, world.DefaultLayout())

	if err := f.session.Rotate(context.Background(), 0, 0); err != nil {
		t.Fatalf("Rotate(0, 0) returned error: %v", err)
	}

	if got := f.session.World().Player().Facing(); got != world.South {
		t.Errorf("player facing = %v, want south", got)
	}
	if f.session.Rotations() != 1 || f.cues.rotated != 1 {
		t.Errorf("rotations=%d cues=%d, want 1 and 1", f.session.Rotations(), f.cues.rotated)
	}
	if len(f.pub.snaps) != 1 || f.pub.snaps[0].Player.Facing != "south" {
		t.Errorf("published %+v, want one snapshot facing south", f.pub.snaps)
	}
	if !f.lastSpanAttr(t, "session.rotate", "player_rotated").AsBool() {
		t.Error("span player_rotated = false, want true")
	}
	if got := f.lastSpanAttr(t, "session.rotate", "tile.rotation").AsInt64(); got != 1 {
		t.Errorf("span tile.rotation = %d, want 1", got)
	}
}

func TestSessionRotateOutOfBounds(t *testing.T) {
	f := newSessionFixture(t, world.DefaultLayout())

	err := f.session.Rotate(context.Background(), 4, 0)
	if !errors.Is(err, world.ErrOutOfBounds) {
		t.Errorf("Rotate(4, 0) error = %v, want ErrOutOfBounds", err)
	}
	if f.session.Rotations() != 0 || f.cues.rotated != 0 || len(f.pub.snaps) != 0 {
		t.Error("failed rotation had effects")
	}
}

func TestSessionFrameSpinsGoal(t *testing.T) {
	f := newSessionFixture(t, world.DefaultLayout())

	f.session.Frame(context.Background(), 500*time.Millisecond)
	f.session.Frame(context.Background(), 250*time.Millisecond)

	if got := f.session.World().Goal().Angle(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("goal angle = %v, want 1.5", got)
	}
}

func TestSessionFramePublishesThrottled(t *testing.T) {
	f := newSessionFixture(t, world.DefaultLayout())
	ctx := context.Background()

	f.session.Frame(ctx, 100*time.Millisecond)
	f.session.Frame(ctx, 100*time.Millisecond)
	if len(f.pub.snaps) != 0 {
		t.Fatalf("published %d snapshots before the interval elapsed, want 0", len(f.pub.snaps))
	}

	f.session.Frame(ctx, 100*time.Millisecond)
	if len(f.pub.snaps) != 1 {
		t.Fatalf("published %d snapshots after 300ms, want 1", len(f.pub.snaps))
	}
	if got := f.pub.snaps[0].Goal.Angle; math.Abs(got-0.6) > 1e-9 {
		t.Errorf("published goal angle = %v, want 0.6", got)
	}

	f.session.Frame(ctx, 100*time.Millisecond)
	if len(f.pub.snaps) != 1 {
		t.Errorf("published %d snapshots, want the interval to restart", len(f.pub.snaps))
	}
	if f.cues.moved != 0 || f.cues.rotated != 0 {
		t.Error("frames played cues")
	}
}

func TestSessionWithoutHooks(t *testing.T) {
	w, err := world.New(context.Background(), world.DefaultLayout())
	if err != nil {
		t.Fatalf("world.New() returned error: %v", err)
	}
	s := NewSession(w, 1, Hooks{})

	if _, err := s.Advance(context.Background()); err != nil {
		t.Errorf("Advance() returned error: %v", err)
	}
	if err := s.Rotate(context.Background(), 1, 1); err != nil {
		t.Errorf("Rotate() returned error: %v", err)
	}
	s.Frame(context.Background(), time.Second)
	s.Publish(context.Background())
}
