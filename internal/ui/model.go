package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmodin/downpour/internal/feed"
	"github.com/pmodin/downpour/internal/prefs"
	"github.com/pmodin/downpour/internal/rain"
)

// frameMsg is the animation heartbeat.
type frameMsg time.Time

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Options configures the animation loop.
type Options struct {
	// Field is the rain engine, sized on the first window size message.
	Field *rain.Field
	// Engine is the column configuration shared with Field. The color
	// cycle key mutates its base color in place.
	Engine *rain.Config
	// Feed delivers input lines. The model drains it without blocking on
	// every frame, even while paused.
	Feed *feed.Feed
	// Period is the target delay between frames.
	Period time.Duration
	// PrefsPath is where the cycled color is persisted. Empty means the
	// default location.
	PrefsPath string
}

// Model drives the animation: it owns the frame clock, routes input lines
// into the field, and reacts to resize and key events.
type Model struct {
	field   *rain.Field
	engine  *rain.Config
	feed    *feed.Feed
	palette Palette
	keys    keyMap

	period    time.Duration
	prefsPath string

	// frame caches the last composed frame. Composing reads from the
	// column rings and moves their cursors, so it happens exactly once
	// per tick and View serves the cache.
	frame  string
	ready  bool
	paused bool
	closed bool
	err    error
}

// New returns a model ready to hand to a bubbletea program.
func New(opts Options) Model {
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	return Model{
		field:     opts.Field,
		engine:    opts.Engine,
		feed:      opts.Feed,
		palette:   NewPalette(),
		keys:      defaultKeyMap(),
		period:    opts.Period,
		prefsPath: prefsPath,
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.period)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width <= 0 || msg.Height <= 0 {
			return m, nil
		}
		if m.field.Resize(msg.Width, msg.Height) {
			// The field starts blank after a rebuild; the next tick
			// composes the first frame at the new size.
			m.frame = ""
		}
		m.ready = true
		return m, nil

	case frameMsg:
		start := time.Now()

		m = m.drainFeed()
		if m.closed {
			return m, tea.Quit
		}
		if m.ready && !m.paused {
			m.field.Tick()
			m.frame = m.field.Frame(m.palette.Render)
		}

		// Subtract the time spent composing from the next delay so the
		// frame rate holds steady. A slow frame clamps to zero rather
		// than going negative.
		delay := m.period - time.Since(start)
		if delay < 0 {
			delay = 0
		}
		return m, frameCmd(delay)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			return m, nil
		case key.Matches(msg, m.keys.CycleColor):
			m.engine.Base = nextColor(m.engine.Base)
			// Persistence is best-effort; a read-only home dir must not
			// stop the animation.
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Color: m.engine.Base.String()})
			return m, nil
		}
	}
	return m, nil
}

// View renders the cached frame.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.frame
}

// Err reports the input failure that ended the run, if any.
func (m Model) Err() error {
	return m.err
}

// drainFeed moves every line already waiting on the feed into the field.
// It never blocks: an idle producer just yields an empty drain. The feed
// closing ends the run; Err distinguishes a clean end of input from a
// transport failure.
func (m Model) drainFeed() Model {
	if m.closed || m.feed == nil {
		return m
	}
	for {
		select {
		case line, ok := <-m.feed.Lines():
			if !ok {
				m.closed = true
				m.err = m.feed.Err()
				return m
			}
			m.field.Route(line)
		default:
			return m
		}
	}
}

func nextColor(c rain.Color) rain.Color {
	colors := rain.Colors()
	for i, candidate := range colors {
		if candidate == c {
			return colors[(i+1)%len(colors)]
		}
	}
	return colors[0]
}

// Run blocks until the animation ends, the context is canceled, or input
// delivery fails.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return fmt.Errorf("read input: %w", m.Err())
	}
	return nil
}
