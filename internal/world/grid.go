package world

import "fmt"

// Grid is a fixed-size rectangular arrangement of tiles, stored row-major.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid from rows of tiles. Every row must have the same,
// non-zero length. The tiles are copied.
func NewGrid(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty grid: %w", ErrInvalidLayout)
	}

	width := len(rows[0])
	tiles := make([]Tile, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d: %w", y, len(row), width, ErrInvalidLayout)
		}
		tiles = append(tiles, row...)
	}

	return &Grid{
		width:  width,
		height: len(rows),
		tiles:  tiles,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if the given cell lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// TileAt returns the tile at the given cell.
func (g *Grid) TileAt(row, col int) (*Tile, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("tile (row %d, col %d) in %dx%d grid: %w", row, col, g.width, g.height, ErrOutOfBounds)
	}
	return &g.tiles[row*g.width+col], nil
}
