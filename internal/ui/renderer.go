package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/straightahead/internal/gamedata"
	"github.com/samdwyer/straightahead/internal/world"
)

const (
	runeCorner     = '+'
	runeHorizontal = '─'
	runeVertical   = '│'
)

// goalFrames spin clockwise, one frame per quarter turn.
var goalFrames = []rune{'◰', '◳', '◲', '◱'}

// Renderer handles drawing the world to the screen.
type Renderer struct {
	screen *Screen
	theme  gamedata.Theme
	geo    Geometry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme gamedata.Theme, geo Geometry) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
		geo:    geo,
	}
}

// Geometry returns the cell geometry used for drawing and hit testing.
func (r *Renderer) Geometry() Geometry {
	return r.geo
}

// Render draws the grid, goal, player and a status line to the screen. When
// the terminal is too small for the board only a resize hint is shown.
func (r *Renderer) Render(w *world.World, status string) {
	r.screen.Clear()

	grid := w.Grid()
	needW := grid.Width() * r.geo.CellWidth
	needH := grid.Height()*r.geo.CellHeight + 1
	if !r.screen.Fits(needW, needH) {
		r.RenderMessage(fmt.Sprintf("Enlarge the terminal to at least %dx%d", needW, needH), 0)
		r.screen.Show()
		return
	}

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			tile, err := grid.TileAt(row, col)
			if err != nil {
				continue
			}
			r.drawTile(row, col, tile)
		}
	}

	r.drawPieces(w.Player(), w.Goal())
	r.RenderMessage(status, grid.Height()*r.geo.CellHeight)

	r.screen.Show()
}

// drawTile draws the tile's outline. Each side is colored by whether the
// tile can currently be crossed in that direction.
func (r *Renderer) drawTile(row, col int, tile *world.Tile) {
	x0, y0 := r.geo.Origin(row, col)
	x1 := x0 + r.geo.CellWidth - 1
	y1 := y0 + r.geo.CellHeight - 1

	for _, d := range world.AllDirections() {
		open, err := tile.IsOpen(d)
		if err != nil {
			continue
		}
		style := r.DoorStyle(open)

		switch d {
		case world.North:
			r.hline(x0+1, x1-1, y0, style)
		case world.South:
			r.hline(x0+1, x1-1, y1, style)
		case world.West:
			r.vline(x0, y0+1, y1-1, style)
		case world.East:
			r.vline(x1, y0+1, y1-1, style)
		}
	}

	corner := tcell.StyleDefault.Foreground(r.theme.Corner)
	r.screen.SetContent(x0, y0, runeCorner, corner)
	r.screen.SetContent(x1, y0, runeCorner, corner)
	r.screen.SetContent(x0, y1, runeCorner, corner)
	r.screen.SetContent(x1, y1, runeCorner, corner)
}

// drawPieces draws the goal and player at their cells' centers. When they
// share a cell they are drawn side by side.
func (r *Renderer) drawPieces(p *world.Player, g *world.Goal) {
	goalStyle := tcell.StyleDefault.Foreground(r.theme.Goal)
	playerStyle := tcell.StyleDefault.Foreground(r.theme.Player).Bold(true)

	px, py := r.geo.Center(p.Position().Row, p.Position().Col)
	gx, gy := r.geo.Center(g.Position().Row, g.Position().Col)
	if p.Position() == g.Position() {
		px--
		gx++
	}

	r.screen.SetContent(gx, gy, GoalGlyph(g.Angle()), goalStyle)
	r.screen.SetContent(px, py, PlayerGlyph(p.Facing()), playerStyle)
}

func (r *Renderer) hline(xFrom, xTo, y int, style tcell.Style) {
	for x := xFrom; x <= xTo; x++ {
		r.screen.SetContent(x, y, runeHorizontal, style)
	}
}

func (r *Renderer) vline(x, yFrom, yTo int, style tcell.Style) {
	for y := yFrom; y <= yTo; y++ {
		r.screen.SetContent(x, y, runeVertical, style)
	}
}

// DoorStyle returns the style used for an open or closed tile side.
func (r *Renderer) DoorStyle(open bool) tcell.Style {
	if open {
		return tcell.StyleDefault.Foreground(r.theme.DoorOpen)
	}
	return tcell.StyleDefault.Foreground(r.theme.DoorClosed)
}

// RenderMessage displays a message starting at column 0 of row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(r.theme.Status)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}

// PlayerGlyph returns the arrow drawn for a facing.
func PlayerGlyph(d world.Direction) rune {
	switch d {
	case world.North:
		return '▲'
	case world.East:
		return '▶'
	case world.South:
		return '▼'
	case world.West:
		return '◀'
	default:
		return '?'
	}
}

// GoalGlyph returns the spinner frame for a rotation angle in radians.
func GoalGlyph(angle float64) rune {
	quarter := int(math.Floor(angle / (math.Pi / 2)))
	idx := ((quarter % len(goalFrames)) + len(goalFrames)) % len(goalFrames)
	return goalFrames[idx]
}
