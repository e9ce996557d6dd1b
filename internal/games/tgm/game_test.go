package tgm

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-grandmaster/internal/config"
	"github.com/vovakirdan/tui-grandmaster/internal/core"
	"github.com/vovakirdan/tui-grandmaster/internal/games/tgm/engine"
	"github.com/vovakirdan/tui-grandmaster/internal/registry"
)

func testConfig(seed uint64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func TestGameDeterminism(t *testing.T) {
	g1 := New("master")
	g1.Reset(testConfig(12345))
	RunBot(g1, 3000)

	g2 := New("master")
	g2.Reset(testConfig(12345))
	RunBot(g2, 3000)

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	assert.Equal(t, snap1, snap2)
	assert.Equal(t, snap1.Digest(), snap2.Digest())
	assert.Equal(t, 3000, snap1.Tick)
}

func TestDigestChangesWithSeed(t *testing.T) {
	g1 := New("classic")
	g1.Reset(testConfig(1))
	RunBot(g1, 3000)

	g2 := New("classic")
	g2.Reset(testConfig(2))
	RunBot(g2, 3000)

	assert.NotEqual(t, g1.Snapshot().Digest(), g2.Snapshot().Digest())
}

// confirm presses and releases a rotate key.
func confirm(g *Game) core.StepResult {
	g.Step(core.InputFrame{Held: [core.ButtonCount]int{core.ButtonRotateCW1: 1}})
	return g.Step(core.InputFrame{})
}

func TestRunLifecycle(t *testing.T) {
	g := New("classic")
	g.Reset(testConfig(7))

	assert.False(t, g.State().InRun)
	confirm(g)
	require.Equal(t, engine.ScreenLevelSelect, g.Engine().Screen())

	g.Step(core.InputFrame{Held: [core.ButtonCount]int{core.ButtonRotateCW1: 1}})
	res := g.Step(core.InputFrame{})
	assert.True(t, res.Started)
	assert.True(t, res.State.InRun)
	assert.Equal(t, engine.ScreenGameStart, g.Engine().Screen())

	// Hold soft drop until the stack tops out.
	var frame core.InputFrame
	var finished *core.RunSummary
	for i := 0; i < 20000 && finished == nil; i++ {
		frame = frame.Advance(core.ButtonSet(0).Add(core.ButtonDown))
		res = g.Step(frame)
		assert.False(t, res.Started)
		finished = res.Finished
	}
	require.NotNil(t, finished)

	assert.Equal(t, 0, finished.StartLevel)
	assert.Positive(t, finished.Level)
	assert.Positive(t, finished.Ticks)
	assert.False(t, finished.Completed)
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.InRun)
	assert.Equal(t, finished.Level, res.State.Score)

	// Finished is reported once.
	res = g.Step(frame)
	assert.Nil(t, res.Finished)
}

func TestRenderStartScreen(t *testing.T) {
	g := New("classic")
	g.Reset(testConfig(1))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "T G M")
	assert.Contains(t, out, "Classic rules")
}

func TestRenderLevelSelect(t *testing.T) {
	g := New("classic")
	g.Reset(testConfig(1))
	confirm(g)
	g.Step(core.InputFrame{Held: [core.ButtonCount]int{core.ButtonDown: 1}})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "SELECT START LEVEL")
	assert.Contains(t, out, "> 100 <")
}

func TestRenderReadyAndPanel(t *testing.T) {
	g := New("classic")
	g.Reset(testConfig(3))
	confirm(g)
	g.Step(core.InputFrame{Held: [core.ButtonCount]int{core.ButtonRotateCW1: 1}})
	g.Step(core.InputFrame{})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "READY?")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "LEVEL")
	assert.Contains(t, out, "100")

	// The well box spans the visible rows plus borders.
	assert.Equal(t, 2, strings.Count(out, "┌"))
}

func TestRenderActivePiece(t *testing.T) {
	g := New("classic")
	g.Reset(testConfig(3))
	confirm(g)
	g.Step(core.InputFrame{Held: [core.ButtonCount]int{core.ButtonRotateCW1: 1}})
	for g.Engine().Screen() != engine.ScreenPieceLive {
		g.Step(core.InputFrame{})
	}

	p, ok := g.Engine().ActivePiece()
	require.True(t, ok)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	area := core.Centered(wellBoxW+panelGap+panelW, wellBoxH, 80, 24)
	box := core.NewRect(area.X, area.Y, wellBoxW, wellBoxH)
	for _, c := range p.Cells() {
		if c.Row >= engine.VisibleRows {
			continue
		}
		cell := screen.GetCell(cellX(box, c.Col), cellY(box, c.Row))
		assert.Equal(t, BlockGlyph, cell.Rune)
		assert.Equal(t, PieceColor(p.Type), cell.Color)
	}
}

func TestModeFromConfigMatchesPresets(t *testing.T) {
	defaults := config.DefaultRulesConfig()
	for id, preset := range presets {
		t.Run(id, func(t *testing.T) {
			got, err := ModeFromConfig(id, defaults.Modes[id])
			require.NoError(t, err)
			want := preset()

			assert.NotNil(t, got.Rotate)
			got.Rotate, want.Rotate = nil, nil
			assert.Equal(t, want, got)
		})
	}
}

func TestModeFromConfigRejectsInvalid(t *testing.T) {
	mc := config.DefaultRulesConfig().Modes["classic"]
	mc.Boundary = "forever"
	_, err := ModeFromConfig("classic", mc)
	assert.Error(t, err)

	mc = config.DefaultRulesConfig().Modes["classic"]
	mc.Randomizer.History = []string{"z", "s"}
	m, err := ModeFromConfig("classic", mc)
	require.NoError(t, err)
	assert.Equal(t, []engine.PieceType{engine.PieceZ, engine.PieceS}, m.Generator.History)
}

func TestLoadModeUnknown(t *testing.T) {
	_, _, err := LoadMode("marathon")
	assert.Error(t, err)
}

func TestBadConfigPathFallsBack(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New("master")
	g.Reset(testConfig(1))
	assert.Error(t, g.ConfigError())
	assert.Equal(t, "master", g.Engine().Mode().Name)
	assert.True(t, g.Engine().Mode().SonicDrop)
}

func TestPresetsRegistered(t *testing.T) {
	for id := range presets {
		assert.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestUnknownIDFallsBackToClassic(t *testing.T) {
	g := New("zen")
	assert.Equal(t, "classic", g.ID())
	assert.Equal(t, "Classic", g.Title())
}
