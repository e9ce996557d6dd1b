// Package tgm adapts the falling-block engine to the terminal platform: one
// registry entry per rule preset, rule loading from the YAML tables, and a
// renderer onto the shared screen buffer.
package tgm

import (
	"github.com/vovakirdan/tui-grandmaster/internal/core"
	"github.com/vovakirdan/tui-grandmaster/internal/games/tgm/engine"
	"github.com/vovakirdan/tui-grandmaster/internal/registry"
)

// Game runs one rule preset.
type Game struct {
	id        string
	title     string
	mode      *engine.Mode
	state     engine.State
	config    core.RuntimeConfig
	configErr error
}

// New creates a game for the given mode ID. Unknown IDs fall back to the
// classic rules.
func New(id string) *Game {
	title := defaultTitle(id)
	if _, ok := presets[id]; !ok {
		id, title = "classic", defaultTitle("classic")
	}
	return &Game{id: id, title: title}
}

// NewWithMode creates a game that always plays m, skipping the rule file.
func NewWithMode(id, title string, m *engine.Mode) *Game {
	return &Game{id: id, title: title, mode: m}
}

func defaultTitle(id string) string {
	switch id {
	case "master":
		return "Master"
	default:
		return "Classic"
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the rules and returns to the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	if g.mode == nil {
		m, title, err := LoadMode(g.id)
		g.mode, g.configErr = m, err
		if title != "" {
			g.title = title
		}
	}
	g.state = engine.New(g.mode, cfg.Seed)
}

// ConfigError returns the rule loading error of the last Reset, if the
// built-in preset had to be used instead.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	prev := g.state.Screen()
	g.state = engine.Step(g.state, in)

	res := core.StepResult{State: g.State()}
	if cur := g.state.Screen(); cur != prev {
		switch cur {
		case engine.ScreenGameStart:
			res.Started = true
		case engine.ScreenGameOver:
			res.Finished = &core.RunSummary{
				StartLevel: g.state.StartLevel(),
				Level:      g.state.Level(),
				Ticks:      g.state.RunTicks(),
				Completed:  g.state.IsGameOver(),
			}
		}
	}
	return res
}

// State returns the current game state. Score is the level reached.
func (g *Game) State() core.GameState {
	screen := g.state.Screen()
	return core.GameState{
		Score:    g.state.Level(),
		InRun:    screen >= engine.ScreenGameStart && screen < engine.ScreenGameOver,
		GameOver: screen == engine.ScreenGameOver,
	}
}

// Engine returns the current engine state.
func (g *Game) Engine() engine.State {
	return g.state
}

func init() {
	for id := range presets {
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}
