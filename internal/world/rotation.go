package world

// Rotate turns the tile at (row, col) a quarter turn clockwise. If the player
// stands on that tile it turns with it. It reports whether the player turned.
// Out-of-range coordinates return ErrOutOfBounds and change nothing.
func (w *World) Rotate(row, col int) (bool, error) {
	tile, err := w.grid.TileAt(row, col)
	if err != nil {
		return false, err
	}
	tile.RotateCW()

	if w.player.pos == (Position{Col: col, Row: row}) {
		w.player.turnCW()
		return true, nil
	}
	return false, nil
}
