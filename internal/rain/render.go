package rain

import "strings"

// Styler wraps a cell's text in the terminal encoding for its color. The
// engine stays encoding-agnostic; the UI layer supplies a Styler backed by
// its style table and tests supply plain or tagging functions.
type Styler func(Color, string) string

// Frame composes one full frame as a newline-joined block of rows, reading
// every visible cell from the column buffers. Reading advances the ring
// cursors, so call Frame exactly once per Tick; the cursors rewind on the
// next push.
func (f *Field) Frame(style Styler) string {
	if f.width == 0 || f.height == 0 {
		return ""
	}
	if f.mode.Kind == Spiral {
		return f.spiralFrame(style)
	}
	return f.directionalFrame(style)
}

// directionalFrame walks rows top to bottom regardless of scroll direction;
// the direction only decides which way each column's read cursor moves.
func (f *Field) directionalFrame(style Styler) string {
	var b strings.Builder
	for row := 0; row < f.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, col := range f.columns {
			c := col.Next(f.mode.Kind)
			b.WriteString(style(c.Color, string(c.Rune)))
		}
	}
	return b.String()
}

// spiralFrame places ray cells onto a blank screen grid at their projected
// positions. Positions outside the terminal bounds are skipped, but the ray
// cursor advances for them all the same, so off-screen positions consume a
// character slot that is never shown.
func (f *Field) spiralFrame(style Styler) string {
	sp := Projector{
		Coef:    f.mode.Coef,
		CenterX: f.width / 2,
		CenterY: f.height / 2,
	}

	grid := make([]Cell, f.width*f.height)
	for i := range grid {
		grid[i] = blank
	}

	ray := f.columns[0]
	for p := 1; p < ray.ring.Len(); p++ {
		c := ray.Next(Spiral)
		x, y := sp.At(p)
		if x < 0 || x >= f.width || y < 0 || y >= f.height {
			continue
		}
		grid[y*f.width+x] = c
	}

	var b strings.Builder
	for row := 0; row < f.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < f.width; col++ {
			c := grid[row*f.width+col]
			b.WriteString(style(c.Color, string(c.Rune)))
		}
	}
	return b.String()
}
