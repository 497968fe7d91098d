package ui

import (
	"context"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/straightahead/internal/gamedata"
	"github.com/samdwyer/straightahead/internal/world"
)

var testTheme = gamedata.Theme{
	DoorOpen:   tcell.ColorGreen,
	DoorClosed: tcell.ColorRed,
	Corner:     tcell.ColorGray,
	Player:     tcell.ColorYellow,
	Goal:       tcell.ColorPurple,
	Status:     tcell.ColorWhite,
}

func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := WrapScreen(sim)
	if err != nil {
		t.Fatalf("WrapScreen() returned error: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(40, 22)

	return NewRenderer(screen, testTheme, Geometry{CellWidth: 9, CellHeight: 5}), sim
}

func TestGeometryCellAt(t *testing.T) {
	geo := Geometry{CellWidth: 9, CellHeight: 5}

	tests := []struct {
		x, y     int
		row, col int
	}{
		{0, 0, 0, 0},
		{8, 4, 0, 0},
		{9, 4, 0, 1},
		{9, 5, 1, 1},
		{35, 19, 3, 3},
		{-1, -1, -1, -1},
	}

	for _, tt := range tests {
		row, col := geo.CellAt(tt.x, tt.y)
		if row != tt.row || col != tt.col {
			t.Errorf("CellAt(%d, %d) = (%d, %d), want (%d, %d)", tt.x, tt.y, row, col, tt.row, tt.col)
		}
	}
}

func TestGeometryOriginAndCenter(t *testing.T) {
	geo := Geometry{CellWidth: 9, CellHeight: 5}

	if x, y := geo.Origin(2, 3); x != 27 || y != 10 {
		t.Errorf("Origin(2, 3) = (%d, %d), want (27, 10)", x, y)
	}
	if x, y := geo.Center(2, 3); x != 31 || y != 12 {
		t.Errorf("Center(2, 3) = (%d, %d), want (31, 12)", x, y)
	}

	// The center of a cell maps back to the same cell.
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			x, y := geo.Center(row, col)
			if r, c := geo.CellAt(x, y); r != row || c != col {
				t.Errorf("CellAt(Center(%d, %d)) = (%d, %d)", row, col, r, c)
			}
		}
	}
}

func TestPlayerGlyph(t *testing.T) {
	tests := []struct {
		dir      world.Direction
		expected rune
	}{
		{world.North, '▲'},
		{world.East, '▶'},
		{world.South, '▼'},
		{world.West, '◀'},
		{world.Direction(42), '?'},
	}

	for _, tt := range tests {
		if got := PlayerGlyph(tt.dir); got != tt.expected {
			t.Errorf("PlayerGlyph(%v) = %c, want %c", tt.dir, got, tt.expected)
		}
	}
}

func TestGoalGlyph(t *testing.T) {
	tests := []struct {
		angle    float64
		expected rune
	}{
		{0, '◰'},
		{math.Pi/2 + 0.1, '◳'},
		{math.Pi + 0.1, '◲'},
		{3*math.Pi/2 + 0.1, '◱'},
		{2*math.Pi + 0.1, '◰'},
		{-0.1, '◱'},
	}

	for _, tt := range tests {
		if got := GoalGlyph(tt.angle); got != tt.expected {
			t.Errorf("GoalGlyph(%v) = %c, want %c", tt.angle, got, tt.expected)
		}
	}
}

func TestRenderDefaultWorld(t *testing.T) {
	r, sim := newSimRenderer(t)

	w, err := world.New(context.Background(), world.DefaultLayout())
	if err != nil {
		t.Fatalf("world.New() returned error: %v", err)
	}
	r.Render(w, "status")

	check := func(x, y int, want rune, style *tcell.Style) {
		t.Helper()
		got, _, gotStyle, _ := sim.GetContent(x, y)
		if got != want {
			t.Errorf("content at (%d, %d) = %c, want %c", x, y, got, want)
		}
		if style != nil && gotStyle != *style {
			t.Errorf("style at (%d, %d) does not match", x, y)
		}
	}
	open := r.DoorStyle(true)
	closed := r.DoorStyle(false)

	check(0, 0, runeCorner, nil)
	check(4, 2, '▶', nil)                 // player at (0,0) facing east
	check(31, 17, '◰', nil)               // goal at (3,3)
	check(28, 0, runeHorizontal, &closed) // horizontal tile (0,3): north closed
	check(27, 2, runeVertical, &open)     // horizontal tile (0,3): west open
	check(0, 20, 's', nil)                // status line under the grid

	// Rotating the horizontal tile opens its north side.
	if _, err := w.Rotate(0, 3); err != nil {
		t.Fatalf("Rotate(0, 3) returned error: %v", err)
	}
	r.Render(w, "status")
	check(28, 0, runeHorizontal, &open)
	check(27, 2, runeVertical, &closed)
}

func TestRenderPlayerOnGoal(t *testing.T) {
	r, sim := newSimRenderer(t)

	o := world.NewTile(world.DoorsOpen)
	w, err := world.New(context.Background(), world.Layout{
		Tiles:        [][]world.Tile{{o}},
		PlayerFacing: world.North,
	})
	if err != nil {
		t.Fatalf("world.New() returned error: %v", err)
	}
	r.Render(w, "")

	if got, _, _, _ := sim.GetContent(3, 2); got != '▲' {
		t.Errorf("player glyph = %c, want ▲", got)
	}
	if got, _, _, _ := sim.GetContent(5, 2); got != '◰' {
		t.Errorf("goal glyph = %c, want ◰", got)
	}
}

func TestRenderTerminalTooSmall(t *testing.T) {
	r, sim := newSimRenderer(t)
	sim.SetSize(30, 10)

	w, err := world.New(context.Background(), world.DefaultLayout())
	if err != nil {
		t.Fatalf("world.New() returned error: %v", err)
	}
	r.Render(w, "status")

	if got, _, _, _ := sim.GetContent(0, 0); got != 'E' {
		t.Errorf("content at (0, 0) = %c, want the resize hint", got)
	}
	if got, _, _, _ := sim.GetContent(4, 2); got == '▶' {
		t.Error("player drawn on a terminal too small for the board")
	}

	// 36x21 is exactly enough for a 4x4 board of 9x5 cells plus the status line.
	sim.SetSize(36, 21)
	r.Render(w, "status")
	if got, _, _, _ := sim.GetContent(4, 2); got != '▶' {
		t.Errorf("player glyph = %c, want ▶", got)
	}
}
