package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/straightahead/internal/world"
)

// ErrUnknownDoors is returned for a tile token that names no door layout.
var ErrUnknownDoors = errors.New("unknown door layout")

// Named door layouts usable as tile tokens in levels.json.
var doorPresets = map[string][4]bool{
	"open":       world.DoorsOpen,
	"horizontal": world.DoorsHorizontal,
	"vertical":   world.DoorsVertical,
}

// CellDef is a grid cell reference in level data.
type CellDef struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// PlayerDef places the player. Facing is a raw unit vector [dx, dy] with +y south.
type PlayerDef struct {
	Col    int    `json:"col"`
	Row    int    `json:"row"`
	Facing [2]int `json:"facing"`
}

// LevelDef defines a level loaded from JSON.
type LevelDef struct {
	ID     string     `json:"id"`     // Unique identifier (e.g., "straight-ahead")
	Name   string     `json:"name"`   // Display name
	Tiles  [][]string `json:"tiles"`  // Rows of tile tokens, indexed [row][col]
	Player PlayerDef  `json:"player"` // Starting placement
	Goal   CellDef    `json:"goal"`   // Goal cell (decorative)
}

// ParseDoors converts a tile token to a door layout. A token is either a
// preset name ("open", "horizontal", "vertical") or a four-character mask of
// '0'/'1' in north, east, south, west order (e.g., "1010").
func ParseDoors(token string) ([4]bool, error) {
	if doors, ok := doorPresets[token]; ok {
		return doors, nil
	}

	var doors [4]bool
	if len(token) != 4 {
		return doors, fmt.Errorf("%q: %w", token, ErrUnknownDoors)
	}
	for i := 0; i < 4; i++ {
		switch token[i] {
		case '1':
			doors[i] = true
		case '0':
		default:
			return doors, fmt.Errorf("%q: %w", token, ErrUnknownDoors)
		}
	}
	return doors, nil
}

// Layout converts the definition into a world layout.
func (l *LevelDef) Layout() (world.Layout, error) {
	rows := make([][]world.Tile, len(l.Tiles))
	for y, tokens := range l.Tiles {
		rows[y] = make([]world.Tile, len(tokens))
		for x, token := range tokens {
			doors, err := ParseDoors(token)
			if err != nil {
				return world.Layout{}, fmt.Errorf("level %s tile (row %d, col %d): %w", l.ID, y, x, err)
			}
			rows[y][x] = world.NewTile(doors)
		}
	}

	facing, err := world.DirectionFromVector(l.Player.Facing[0], l.Player.Facing[1])
	if err != nil {
		return world.Layout{}, fmt.Errorf("level %s player facing: %w", l.ID, err)
	}

	return world.Layout{
		Tiles:        rows,
		PlayerStart:  world.Position{Col: l.Player.Col, Row: l.Player.Row},
		PlayerFacing: facing,
		Goal:         world.Position{Col: l.Goal.Col, Row: l.Goal.Row},
	}, nil
}

// LoadLevels loads all level definitions from the embedded levels.json.
func LoadLevels() ([]LevelDef, error) {
	return Load[[]LevelDef]("levels.json")
}
