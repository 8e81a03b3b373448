// Package ui renders the rain with bubbletea. It owns everything terminal:
// the alternate screen, the frame clock, resize handling, and the key
// bindings. The engine in internal/rain stays free of terminal concerns and
// is driven entirely from the model's update loop.
package ui
