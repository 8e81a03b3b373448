package rain

// Config holds the per-run drawing parameters shared by every column. A
// single value is referenced by all columns rather than copied into each.
type Config struct {
	Base         Color
	Highlight    Color
	HighlightLen int
}

// Column drains queued lines of text into its ring, one character per tick.
// Lines wait in a pending queue (the invisible cache) until the column
// reaches them; the cursor tracks how far into the front line draining has
// progressed.
type Column struct {
	ring    *Ring
	pending [][]rune
	cursor  int
	cfg     *Config
}

// NewColumn returns an idle column with a blank ring of the given height.
func NewColumn(height int, cfg *Config) *Column {
	return &Column{
		ring: NewRing(height),
		cfg:  cfg,
	}
}

// Enqueue appends a complete line to the pending queue. The queue is
// unbounded: if input outpaces the one-character-per-tick drain, memory
// grows with the backlog.
func (c *Column) Enqueue(line string) {
	c.pending = append(c.pending, []rune(line))
}

// Tick advances the column by one step. An idle column pushes a single
// blank, so every column moves in lockstep whether or not it has text.
// When the front line is exhausted it is dropped and `spacers` blank cells
// separate it from the next message. Otherwise the character under the
// cursor is pushed, in the highlight color while the cursor is below the
// configured threshold.
func (c *Column) Tick(spacers int) {
	switch {
	case len(c.pending) == 0:
		c.ring.Push(blank)
	case c.cursor >= len(c.pending[0]):
		c.pending = c.pending[1:]
		c.cursor = 0
		for range spacers {
			c.ring.Push(blank)
		}
	default:
		cell := Cell{Rune: c.pending[0][c.cursor], Color: c.cfg.Base}
		if c.cursor < c.cfg.HighlightLen {
			cell.Color = c.cfg.Highlight
		}
		c.ring.Push(cell)
		c.cursor++
	}
}

// Next reads one cell from the ring in the given motion direction.
func (c *Column) Next(k Kind) Cell {
	return c.ring.Next(k)
}

// Pending reports how many complete lines are waiting to be drained.
func (c *Column) Pending() int {
	return len(c.pending)
}
