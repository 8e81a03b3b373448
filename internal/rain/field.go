package rain

import "math/rand/v2"

// Field owns the column collection for the current terminal size and drives
// the per-frame state transitions. It is pure state: no terminal I/O, no
// clock. The UI layer feeds it resize events, input lines and ticks, and
// asks it to compose frames.
//
// Directional modes run one column per screen column; spiral mode runs a
// single shared ray sized to the terminal perimeter.
type Field struct {
	mode    Mode
	cfg     *Config
	spacers int

	width   int
	height  int
	columns []*Column

	rng *rand.Rand
}

// NewField returns an empty field. It renders nothing until the first
// Resize supplies terminal dimensions.
func NewField(mode Mode, cfg *Config, spacers int, rng *rand.Rand) *Field {
	return &Field{
		mode:    mode,
		cfg:     cfg,
		spacers: spacers,
		rng:     rng,
	}
}

// Resize rebuilds every column for the new dimensions, discarding all
// buffered content and pending lines. It reports whether a rebuild
// happened; equal dimensions are a no-op.
func (f *Field) Resize(width, height int) bool {
	if width == f.width && height == f.height {
		return false
	}
	f.width = width
	f.height = height

	if f.mode.Kind == Spiral {
		f.columns = []*Column{NewColumn(RayLength(width, height), f.cfg)}
		return true
	}
	f.columns = make([]*Column, width)
	for i := range f.columns {
		f.columns[i] = NewColumn(height, f.cfg)
	}
	return true
}

// Route hands an incoming line to a uniformly random column. Lines arriving
// before the first Resize are dropped; there is nowhere to show them.
func (f *Field) Route(line string) {
	if len(f.columns) == 0 {
		return
	}
	f.columns[f.rng.IntN(len(f.columns))].Enqueue(line)
}

// Tick advances every column by exactly one step.
func (f *Field) Tick() {
	for _, c := range f.columns {
		c.Tick(f.spacers)
	}
}

// Size returns the current field dimensions.
func (f *Field) Size() (width, height int) {
	return f.width, f.height
}

// Columns reports the number of live columns.
func (f *Field) Columns() int {
	return len(f.columns)
}
