// Package feed reads newline-delimited text in the background and hands
// completed lines to the render loop without ever blocking it.
package feed

import (
	"bufio"
	"io"
)

// Lines are buffered so short input bursts don't stall the reader while the
// render loop is mid-frame.
const channelDepth = 64

// maxLineBytes caps a single input line; log pipelines occasionally emit
// lines far beyond bufio's 64K default.
const maxLineBytes = 1 << 20

// Feed is the one-directional hand-off between the input reader goroutine
// and the render loop. The loop drains Lines non-blockingly once per frame;
// the channel closing signals end of input.
type Feed struct {
	lines chan string
	err   error
}

// Start launches the reader goroutine and returns immediately.
func Start(r io.Reader) *Feed {
	f := &Feed{lines: make(chan string, channelDepth)}
	go f.scan(r)
	return f
}

func (f *Feed) scan(r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		f.lines <- sc.Text()
	}
	// Publish the error before closing: the close is the synchronization
	// point that makes it visible to the draining side.
	f.err = sc.Err()
	close(f.lines)
}

// Lines returns the hand-off channel. It is closed once the input ends,
// cleanly or not; Err distinguishes the two.
func (f *Feed) Lines() <-chan string {
	return f.lines
}

// Err reports the transport failure that ended the stream, or nil for a
// clean end of input. Only valid after Lines is closed.
func (f *Feed) Err() error {
	return f.err
}
