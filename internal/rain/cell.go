package rain

import (
	"fmt"
	"strings"
)

// Color tags a cell with one of the eight base terminal colors or the
// terminal default. The engine never emits escape sequences itself; turning
// a Color into terminal output is the renderer's job.
type Color uint8

const (
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = map[Color]string{
	Default: "default",
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

// Colors lists every color in declaration order, Default first.
func Colors() []Color {
	return []Color{Default, Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a color name as used on the command line and in the
// config file. Matching is case-insensitive.
func ParseColor(name string) (Color, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == want {
			return c, nil
		}
	}
	return Default, fmt.Errorf("unknown color %q", name)
}

// Cell is one character slot in a column buffer.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: Default}
