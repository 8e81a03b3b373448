package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pmodin/downpour/internal/rain"
)

// Palette maps engine color tags to lipgloss styles. The engine deals in
// symbolic colors only; this is the single place they become escape
// sequences. The eight base colors use the terminal's own ANSI palette, so
// themed terminals recolor the rain the same way they recolor everything
// else.
type Palette struct {
	styles map[rain.Color]lipgloss.Style
}

// NewPalette returns the ANSI palette.
func NewPalette() Palette {
	ansi := func(code string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return Palette{styles: map[rain.Color]lipgloss.Style{
		rain.Black:   ansi("0"),
		rain.Red:     ansi("1"),
		rain.Green:   ansi("2"),
		rain.Yellow:  ansi("3"),
		rain.Blue:    ansi("4"),
		rain.Magenta: ansi("5"),
		rain.Cyan:    ansi("6"),
		rain.White:   ansi("7"),
	}}
}

// Render wraps text in the escape sequence for the given color. Default
// passes through untouched: the terminal's own foreground is the reset
// state, not a color we set.
func (p Palette) Render(c rain.Color, s string) string {
	style, ok := p.styles[c]
	if !ok {
		return s
	}
	return style.Render(s)
}
