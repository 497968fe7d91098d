// Package game provides the main game loop and session management.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/straightahead/internal/gamedata"
	"github.com/samdwyer/straightahead/internal/telemetry"
	"github.com/samdwyer/straightahead/internal/ui"
	"github.com/samdwyer/straightahead/internal/world"
)

// maxFrameStep caps how far a single frame can advance animation after a stall.
const maxFrameStep = 250 * time.Millisecond

// Game holds the terminal, the renderer and the session being played.
type Game struct {
	cfg       Config
	hooks     Hooks
	screen    *ui.Screen
	renderer  *ui.Renderer
	session   *Session
	running   bool
	err       error
	buttons   tcell.ButtonMask
	lastFrame time.Time
}

// New creates a new game instance on the terminal.
func New(cfg Config, hooks Hooks) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return newGame(cfg, hooks, screen, theme), nil
}

func newGame(cfg Config, hooks Hooks, screen *ui.Screen, theme gamedata.Theme) *Game {
	return &Game{
		cfg:      cfg,
		hooks:    hooks,
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme, cfg.Geometry()),
		running:  true,
	}
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	if err := g.init(ctx); err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		g.screen.Close()
		return err
	}
	grid := g.session.World().Grid()
	initSpan.SetAttributes(
		attribute.String("level", g.cfg.Level),
		attribute.Int("grid.width", grid.Width()),
		attribute.Int("grid.height", grid.Height()),
	)
	initSpan.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go g.frames(ctx)

	for g.running {
		g.renderer.Render(g.session.World(), g.status())
		g.handleInput(ctx)
	}

	g.screen.Close()
	return g.err
}

// init builds the world for the configured level and starts a session on it.
func (g *Game) init(ctx context.Context) error {
	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return err
	}
	def, err := registry.Lookup(g.cfg.Level)
	if err != nil {
		return err
	}
	layout, err := def.Layout()
	if err != nil {
		return err
	}
	w, err := world.New(ctx, layout)
	if err != nil {
		return fmt.Errorf("level %s: %w", def.ID, err)
	}

	g.session = NewSession(w, g.cfg.GoalSpeed, g.hooks)
	g.session.Publish(ctx)
	g.lastFrame = time.Now()
	return nil
}

// frames posts an interrupt event per animation frame so that all state
// changes happen on the loop goroutine.
func (g *Game) frames(ctx context.Context) {
	ticker := time.NewTicker(g.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A full queue just drops this frame.
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case nil:
		// Screen finalized.
		g.running = false
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventInterrupt:
		g.handleFrame(ctx, ev.When())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			// Blocked moves are silent no-ops. An error means the world
			// holds an invalid facing, which the loop cannot repair.
			if _, err := g.session.Advance(ctx); err != nil {
				g.err = err
				g.running = false
			}
		case 'q', 'Q':
			g.running = false
		}
	}
}

// handleMouseEvent rotates the cell under the cursor when the primary
// button is released.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	released := g.buttons&tcell.Button1 != 0 && buttons&tcell.Button1 == 0
	g.buttons = buttons
	if !released {
		return
	}

	x, y := ev.Position()
	row, col := g.renderer.Geometry().CellAt(x, y)
	if !g.session.World().Grid().InBounds(row, col) {
		return
	}
	// In bounds, so Rotate cannot fail.
	_ = g.session.Rotate(ctx, row, col)
}

// handleFrame advances animation by the time since the previous frame.
func (g *Game) handleFrame(ctx context.Context, now time.Time) {
	dt := now.Sub(g.lastFrame)
	g.lastFrame = now
	if dt < 0 {
		return
	}
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	g.session.Frame(ctx, dt)
}

// status returns the line drawn under the grid.
func (g *Game) status() string {
	return fmt.Sprintf("Straight Ahead!  moves %d  turns %d  [space] advance  [click] rotate  [q] quit",
		g.session.Moves(), g.session.Rotations())
}
