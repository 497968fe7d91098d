package world

// Snapshot is a read-only copy of the world's state, safe to hand to other
// goroutines or to encode as JSON.
type Snapshot struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Tiles  []TileSnapshot `json:"tiles"`
	Player PlayerSnapshot `json:"player"`
	Goal   GoalSnapshot   `json:"goal"`
}

// TileSnapshot captures one tile. Open is indexed by global direction.
type TileSnapshot struct {
	Row      int     `json:"row"`
	Col      int     `json:"col"`
	Doors    [4]bool `json:"doors"`
	Rotation int     `json:"rotation"`
	Open     [4]bool `json:"open"`
}

// PlayerSnapshot captures the player.
type PlayerSnapshot struct {
	Col    int    `json:"col"`
	Row    int    `json:"row"`
	Facing string `json:"facing"`
}

// GoalSnapshot captures the goal.
type GoalSnapshot struct {
	Col   int     `json:"col"`
	Row   int     `json:"row"`
	Angle float64 `json:"angle"`
}

// Snapshot copies the current state of the world.
func (w *World) Snapshot() Snapshot {
	g := w.grid
	tiles := make([]TileSnapshot, 0, g.width*g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			t := &g.tiles[row*g.width+col]
			ts := TileSnapshot{
				Row:      row,
				Col:      col,
				Doors:    t.doors,
				Rotation: t.rotation,
			}
			for _, d := range t.OpenDirections() {
				ts.Open[d.Index()] = true
			}
			tiles = append(tiles, ts)
		}
	}

	return Snapshot{
		Width:  g.width,
		Height: g.height,
		Tiles:  tiles,
		Player: PlayerSnapshot{
			Col:    w.player.pos.Col,
			Row:    w.player.pos.Row,
			Facing: w.player.facing.String(),
		},
		Goal: GoalSnapshot{
			Col:   w.goal.pos.Col,
			Row:   w.goal.pos.Row,
			Angle: w.goal.angle,
		},
	}
}
