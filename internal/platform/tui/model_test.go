package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
	"github.com/vovakirdan/tui-grandmaster/internal/storage"
	"github.com/vovakirdan/tui-grandmaster/internal/telemetry"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames   []core.InputFrame
	resets   int
	startAt  int // step number reporting Started, 0 for never
	finishAt int // step number reporting Finished, 0 for never
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = nil
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	n := len(g.frames)

	res := core.StepResult{State: g.State()}
	if n == g.startAt {
		res.Started = true
	}
	if n == g.finishAt {
		res.Finished = &core.RunSummary{StartLevel: 0, Level: 42, Ticks: n}
	}
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: len(g.frames)}
}

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(g *fakeGame, store *storage.Store) (Model, *testClock) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, store, cfg, Options{
		HoldWindow: 100 * time.Millisecond,
		Player:     "tester",
		Tracer:     telemetry.NoopTracer(),
	})
	clock := &testClock{t: time.Unix(1000, 0)}
	m.now = clock.Now
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update() returned %T, expected Model", next)
	return nm, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	newTestModel(g, nil)
	assert.Equal(t, 1, g.resets)
}

func TestModelHeldCounters(t *testing.T) {
	g := &fakeGame{}
	m, clock := newTestModel(g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	clock.Advance(16 * time.Millisecond)
	m, _ = update(t, m, TickMsg{})
	clock.Advance(16 * time.Millisecond)
	m, _ = update(t, m, TickMsg{})

	require.Len(t, g.frames, 2)
	assert.Equal(t, 1, g.frames[0].HeldFor(core.ButtonRight))
	assert.Equal(t, 2, g.frames[1].HeldFor(core.ButtonRight))

	// No repeat arrives, the key is released
	clock.Advance(200 * time.Millisecond)
	_, _ = update(t, m, TickMsg{})
	require.Len(t, g.frames, 3)
	assert.False(t, g.frames[2].Pressed(core.ButtonRight), "released after the hold window")
}

func TestModelPauseSkipsSteps(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(g, nil)

	m, _ = update(t, m, runeKey('p'))
	require.True(t, m.Paused())

	m, cmd := update(t, m, TickMsg{})
	assert.Empty(t, g.frames, "no steps while paused")
	assert.NotNil(t, cmd, "paused tick keeps the tick loop alive")

	// Buttons pressed while paused are ignored
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('p'))
	_, _ = update(t, m, TickMsg{})
	require.Len(t, g.frames, 1)
	assert.False(t, g.frames[0].Pressed(core.ButtonLeft), "left pressed while paused reached the game")
}

func TestModelQuitAndBack(t *testing.T) {
	m, _ := newTestModel(&fakeGame{}, nil)
	quit, cmd := update(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
	assert.False(t, quit.BackToMenu())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, quit.View())

	m, _ = newTestModel(&fakeGame{}, nil)
	back, _ := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, back.IsQuitting())
	assert.True(t, back.BackToMenu())
}

func TestModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &fakeGame{startAt: 1, finishAt: 3}
	m, _ := newTestModel(g, store)
	for range 4 {
		m, _ = update(t, m, TickMsg{})
	}

	require.Equal(t, 1, m.SavedRuns())
	runs, err := store.TopRuns("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 42, runs[0].Level)
	assert.Equal(t, 3, runs[0].Ticks)
	assert.Equal(t, "tester", runs[0].Player)
}

func TestModelViewOverlaysPause(t *testing.T) {
	m, _ := newTestModel(&fakeGame{}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	m, _ = update(t, m, runeKey('p'))

	view := m.View()
	assert.Contains(t, view, "FAKE")
	assert.Contains(t, view, "PAUSED")
}
