package ui

// MinCellSize is the smallest cell edge that still leaves room for a center glyph.
const MinCellSize = 3

// Geometry maps grid cells to terminal cells and back.
type Geometry struct {
	CellWidth  int // Terminal columns per grid cell
	CellHeight int // Terminal rows per grid cell
}

// CellAt returns the grid cell under a terminal coordinate, using floor
// division by the cell size. The result may lie outside the grid.
func (g Geometry) CellAt(x, y int) (row, col int) {
	return floorDiv(y, g.CellHeight), floorDiv(x, g.CellWidth)
}

// Origin returns the terminal coordinate of a grid cell's top-left corner.
func (g Geometry) Origin(row, col int) (x, y int) {
	return col * g.CellWidth, row * g.CellHeight
}

// Center returns the terminal coordinate of a grid cell's center.
func (g Geometry) Center(row, col int) (x, y int) {
	x, y = g.Origin(row, col)
	return x + g.CellWidth/2, y + g.CellHeight/2
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
