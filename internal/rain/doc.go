// Package rain implements the falling-character animation engine.
//
// # Overview
//
// The engine is pure state with no clock and no terminal I/O. The UI layer
// owns the frame timing and the escape-sequence encoding; this package owns
// everything in between:
//
//	input line ──Route──▶ Column queue ──Tick──▶ Ring ──Frame──▶ frame string
//
// # Core Types
//
// Cell:
//   - One character slot: a rune plus a Color tag
//   - Colors are symbolic; encoding them is the renderer's problem
//
// Ring:
//   - Fixed-capacity circular buffer, pre-filled with blanks
//   - Push overwrites the oldest slot; reads never fail
//   - Read direction is a parameter, so one structure serves both scroll
//     directions and the spiral ray
//
// Column:
//   - One Ring plus a queue of pending lines and a drain cursor
//   - Tick advances exactly one step per call, keeping all columns in
//     lockstep one cell per frame
//
// Field:
//   - The column collection for the current terminal size
//   - Rebuilt wholesale on resize, discarding prior content
//   - Routes each incoming line to a uniformly random column
//
// Projector:
//   - Archimedean projection of ray positions onto screen coordinates
//   - Off-screen positions are skipped but still consume a ray slot
//
// # Frame Discipline
//
// Each frame is exactly one Tick followed by exactly one Frame call. Frame
// reads advance the ring cursors; the cursors rewind when the next Tick
// pushes. Calling Frame twice between ticks would read from moved cursors
// and scramble the picture, which is why the UI caches the composed string.
package rain
