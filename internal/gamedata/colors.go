package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a theme color to a tcell.Color. It accepts "#RRGGBB",
// the "#RGB" shorthand, or a W3C color name such as "gold".
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
			return c, nil
		}
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", s)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", s, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
