package world

// Position identifies a grid cell by column (x) and row (y).
type Position struct {
	Col int
	Row int
}

// Step returns the neighbouring position in the given direction.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{Col: p.Col + dx, Row: p.Row + dy}
}

// Player is the piece moving through the grid. Its facing doubles as its step.
type Player struct {
	pos    Position
	facing Direction
}

// Position returns the cell the player occupies.
func (p *Player) Position() Position {
	return p.pos
}

// Facing returns the direction the player will advance in.
func (p *Player) Facing() Direction {
	return p.facing
}

// forward moves the player one step along its facing.
func (p *Player) forward() {
	p.pos = p.pos.Step(p.facing)
}

// turnCW turns the player a quarter turn clockwise.
func (p *Player) turnCW() {
	p.facing = p.facing.RotateCW()
}
