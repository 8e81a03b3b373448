package rain

// Ring is a fixed-capacity circular buffer of cells. It is created full of
// blanks, so reads are always valid; there is no empty state and no error
// path. Pushing overwrites the oldest slot.
//
// Two cursors move through the same backing slice: back is where the next
// push lands, front is where the next read starts. Push retreats back by one
// slot and drags front along with it, so within a frame the reader walks the
// buffer starting from the oldest surviving cell.
type Ring struct {
	cells []Cell
	front int
	back  int
}

// NewRing returns a ring of the given capacity pre-filled with blank cells.
// Capacity must be at least 1.
func NewRing(capacity int) *Ring {
	cells := make([]Cell, capacity)
	for i := range cells {
		cells[i] = blank
	}
	return &Ring{cells: cells}
}

// Len returns the fixed capacity of the ring.
func (r *Ring) Len() int {
	return len(r.cells)
}

// Push overwrites the cell at the write cursor, retreats the write cursor
// one slot (wrapping at index 0), and resets the read cursor to match.
func (r *Ring) Push(c Cell) {
	r.cells[r.back] = c
	if r.back == 0 {
		r.back = len(r.cells) - 1
	} else {
		r.back--
	}
	r.front = r.back
}

// Next returns the cell at the read cursor, then advances the cursor one
// slot: toward decreasing indexes for Top and Spiral motion, toward
// increasing indexes for Bottom. Successive Top reads therefore walk the
// buffer in push order.
func (r *Ring) Next(k Kind) Cell {
	c := r.cells[r.front]
	if k == Bottom {
		if r.front == len(r.cells)-1 {
			r.front = 0
		} else {
			r.front++
		}
	} else {
		if r.front == 0 {
			r.front = len(r.cells) - 1
		} else {
			r.front--
		}
	}
	return c
}
