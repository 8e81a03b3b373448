package rain

import (
	"fmt"
	"strings"
)

// Kind selects how cells travel across the screen.
type Kind uint8

const (
	// Top scrolls column contents toward the top edge.
	Top Kind = iota
	// Bottom scrolls column contents toward the bottom edge.
	Bottom
	// Spiral rotates a single ray of cells outward from screen center.
	Spiral
)

// DefaultSpiralCoef is the Archimedean coefficient used when no other value
// is supplied. Radius at ray position p is coef/p, so larger values push the
// visible band of the spiral further out.
const DefaultSpiralCoef = 1500

// Mode is a tagged motion variant. The directional kinds carry no
// parameters; Spiral carries its coefficient.
type Mode struct {
	Kind Kind
	Coef float64
}

// ParseMode resolves a direction name from the command line or config file.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return Mode{Kind: Top}, nil
	case "bottom":
		return Mode{Kind: Bottom}, nil
	case "spiral":
		return Mode{Kind: Spiral, Coef: DefaultSpiralCoef}, nil
	}
	return Mode{}, fmt.Errorf("unknown direction %q (want top, bottom or spiral)", name)
}

func (k Kind) String() string {
	switch k {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Spiral:
		return "spiral"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}
