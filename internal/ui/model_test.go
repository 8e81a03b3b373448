package ui

import (
	"errors"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmodin/downpour/internal/feed"
	"github.com/pmodin/downpour/internal/prefs"
	"github.com/pmodin/downpour/internal/rain"
)

func newTestModel(t *testing.T, r io.Reader) Model {
	t.Helper()
	engine := &rain.Config{Base: rain.Green, Highlight: rain.White, HighlightLen: 2}
	field := rain.NewField(rain.Mode{Kind: rain.Top}, engine, 1, rand.New(rand.NewPCG(1, 2)))
	return New(Options{
		Field:     field,
		Engine:    engine,
		Feed:      feed.Start(r),
		Period:    10 * time.Millisecond,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
}

// newPipeModel backs the model with a pipe that stays open, for tests that
// need the animation running rather than reacting to end of input.
func newPipeModel(t *testing.T) (Model, *io.PipeWriter) {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	return newTestModel(t, pr), pw
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

// tickUntil pumps frame messages until the predicate holds, giving the feed
// goroutine time to deliver its lines.
func tickUntil(t *testing.T, m Model, pred func(Model) bool) Model {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !pred(m) {
		if time.Now().After(deadline) {
			t.Fatalf("condition not reached, last frame %q", m.View())
		}
		m, _ = update(t, m, frameMsg(time.Now()))
		time.Sleep(time.Millisecond)
	}
	return m
}

func TestViewEmptyUntilFirstResize(t *testing.T) {
	m, _ := newPipeModel(t)
	if got := m.View(); got != "" {
		t.Fatalf("View before resize = %q, want empty", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 3, Height: 2})
	m, _ = update(t, m, frameMsg(time.Now()))
	if got := m.View(); got != "   \n   " {
		t.Fatalf("first idle frame = %q, want blank 3x2", got)
	}
}

func TestZeroSizeIsIgnored(t *testing.T) {
	m, _ := newPipeModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 0, Height: 0})
	m, _ = update(t, m, frameMsg(time.Now()))
	if got := m.View(); got != "" {
		t.Fatalf("View after zero-size resize = %q, want empty", got)
	}
}

func TestInputLineReachesFrame(t *testing.T) {
	m, pw := newPipeModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 1, Height: 1})

	go pw.Write([]byte("h\n"))
	m = tickUntil(t, m, func(m Model) bool {
		return strings.Contains(m.View(), "h")
	})
	if m.Err() != nil {
		t.Fatalf("Err = %v, want nil", m.Err())
	}
}

func TestCleanEndOfInputQuits(t *testing.T) {
	m := newTestModel(t, strings.NewReader("x\n"))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 1, Height: 1})

	var cmd tea.Cmd
	deadline := time.Now().Add(2 * time.Second)
	for !m.closed {
		if time.Now().After(deadline) {
			t.Fatalf("model never observed end of input")
		}
		m, cmd = update(t, m, frameMsg(time.Now()))
		time.Sleep(time.Millisecond)
	}
	if cmd == nil {
		t.Fatalf("cmd = nil at end of input, want quit")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatalf("cmd message = %T, want tea.QuitMsg", cmd())
	}
	if m.Err() != nil {
		t.Fatalf("Err = %v, want nil for a clean end of input", m.Err())
	}
}

func TestInputFailureQuits(t *testing.T) {
	boom := errors.New("boom")
	m := newTestModel(t, iotest.ErrReader(boom))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 1, Height: 1})

	var cmd tea.Cmd
	deadline := time.Now().Add(2 * time.Second)
	for m.Err() == nil {
		if time.Now().After(deadline) {
			t.Fatalf("model never observed the input failure")
		}
		m, cmd = update(t, m, frameMsg(time.Now()))
		time.Sleep(time.Millisecond)
	}
	if !errors.Is(m.Err(), boom) {
		t.Fatalf("Err = %v, want %v", m.Err(), boom)
	}
	if cmd == nil {
		t.Fatalf("cmd = nil on input failure, want quit")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatalf("cmd message = %T, want tea.QuitMsg", cmd())
	}
}

func TestPauseFreezesFrame(t *testing.T) {
	m, pw := newPipeModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 1, Height: 3})

	go pw.Write([]byte("ab\n"))
	m = tickUntil(t, m, func(m Model) bool {
		return strings.Contains(m.View(), "a")
	})
	frozen := m.View()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for range 5 {
		m, _ = update(t, m, frameMsg(time.Now()))
	}
	if got := m.View(); got != frozen {
		t.Fatalf("frame advanced while paused:\n got %q\nwant %q", got, frozen)
	}

	// Unpause and the column keeps draining.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, frameMsg(time.Now()))
	if got := m.View(); got == frozen {
		t.Fatalf("frame did not advance after unpausing")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m, _ := newPipeModel(t)
		_, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("key %q: cmd = nil, want quit", msg.String())
		}
		if _, quit := cmd().(tea.QuitMsg); !quit {
			t.Fatalf("key %q: cmd message = %T, want tea.QuitMsg", msg.String(), cmd())
		}
	}
}

func TestCycleColorAdvancesAndPersists(t *testing.T) {
	m, _ := newPipeModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if m.engine.Base != rain.Yellow {
		t.Fatalf("Base = %v after cycle from green, want yellow", m.engine.Base)
	}
	if got := prefs.Load(m.prefsPath).Color; got != "yellow" {
		t.Fatalf("persisted color = %q, want %q", got, "yellow")
	}
}

func TestNextColorWrapsAround(t *testing.T) {
	if got := nextColor(rain.White); got != rain.Default {
		t.Fatalf("nextColor(White) = %v, want Default", got)
	}
	if got := nextColor(rain.Color(200)); got != rain.Default {
		t.Fatalf("nextColor(unknown) = %v, want Default", got)
	}
}
