package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
	_ "github.com/vovakirdan/tui-grandmaster/internal/games/tgm"
	"github.com/vovakirdan/tui-grandmaster/internal/storage"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok, "Update() returned %T, expected SessionModel", next)
	return sm
}

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return NewSessionModel(store, cfg, Options{Player: "tester"})
}

func TestMenuListsModes(t *testing.T) {
	menu := NewMenuModel(nil, core.DefaultConfig())
	items := menu.Items()
	require.GreaterOrEqual(t, len(items), 2)
	assert.Equal(t, "classic", items[0].ModeID)
	assert.Equal(t, "master", items[1].ModeID)
	assert.True(t, containsAll(menu.View(), "T G M", "Master"), "View() = %q", menu.View())
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t, nil)

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.InGame(), "selecting a mode starts the game")
	assert.Contains(t, m.View(), "T G M")

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.InGame())
	assert.Contains(t, m.View(), "Select rules")
}

func TestSessionScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, lvl := range []int{120, 480} {
		_, err := store.SaveRun(storage.RunRecord{ModeID: "master", Player: "p", Level: lvl, Ticks: 600})
		require.NoError(t, err)
	}

	m := newTestSession(t, store)
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.scoreboard, "tab opens the scoreboard")
	assert.Equal(t, "classic", m.scoreboard.SelectedMode())
	assert.Empty(t, m.scoreboard.Runs())

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "master", m.scoreboard.SelectedMode())
	runs := m.scoreboard.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, 480, runs[0].Level, "best level first")

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.scoreboard, "esc closes the scoreboard")

	menu := m.menu.Items()
	assert.Equal(t, 480, menu[1].BestLevel)
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t, nil)
	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}
