package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ThemeDef defines the board colors loaded from JSON. Values are "#RRGGBB",
// "#RGB" or color names.
type ThemeDef struct {
	DoorOpen   string `json:"doorOpen"`   // Side of a tile that can be crossed
	DoorClosed string `json:"doorClosed"` // Side of a tile that blocks
	Corner     string `json:"corner"`     // Tile corners
	Player     string `json:"player"`
	Goal       string `json:"goal"`
	Status     string `json:"status"` // Status line text
}

// Theme holds resolved board colors.
type Theme struct {
	DoorOpen   tcell.Color
	DoorClosed tcell.Color
	Corner     tcell.Color
	Player     tcell.Color
	Goal       tcell.Color
	Status     tcell.Color
}

// Resolve parses every color in the definition.
func (d ThemeDef) Resolve() (Theme, error) {
	var theme Theme
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"doorOpen", d.DoorOpen, &theme.DoorOpen},
		{"doorClosed", d.DoorClosed, &theme.DoorClosed},
		{"corner", d.Corner, &theme.Corner},
		{"player", d.Player, &theme.Player},
		{"goal", d.Goal, &theme.Goal},
		{"status", d.Status, &theme.Status},
	}

	for _, f := range fields {
		color, err := ParseColor(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = color
	}
	return theme, nil
}

// LoadTheme loads and resolves the embedded theme.json.
func LoadTheme() (Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return Theme{}, err
	}
	return def.Resolve()
}
