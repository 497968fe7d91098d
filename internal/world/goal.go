package world

// Goal marks a cell and spins in place. It is decoration only: movement and
// rotation never consult it.
type Goal struct {
	pos   Position
	angle float64
}

// Position returns the goal's cell.
func (g *Goal) Position() Position {
	return g.pos
}

// Angle returns the goal's accumulated rotation in radians.
func (g *Goal) Angle() float64 {
	return g.angle
}

// Spin advances the goal's rotation by the given number of radians.
func (g *Goal) Spin(radians float64) {
	g.angle += radians
}
