package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
	"github.com/vovakirdan/tui-grandmaster/internal/registry"
	"github.com/vovakirdan/tui-grandmaster/internal/storage"
	"github.com/vovakirdan/tui-grandmaster/internal/telemetry"
)

// Options tune the game driver.
type Options struct {
	HoldWindow time.Duration // key hold window, DefaultHoldWindow when zero
	Player     string        // recorded with saved runs
	Tracer     trace.Tracer  // run spans; telemetry.RunTracer() when nil
}

// configErrorer is implemented by games that can fall back to built-in rules.
type configErrorer interface {
	ConfigError() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	keyMapper *KeyMapper
	hold      *HoldTracker
	frame     core.InputFrame
	gameState core.GameState
	now       func() time.Time

	runSpan trace.Span // open while a run is in progress

	paused     bool
	quitting   bool
	backToMenu bool
	savedRuns  int
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano()) //#nosec G115 -- seed only
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.RunTracer()
	}

	game.Reset(cfg)
	if ce, ok := game.(configErrorer); ok {
		if err := ce.ConfigError(); err != nil {
			logger.Warn("rule file rejected, using built-in rules", "mode", game.ID(), "error", err)
		}
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		hold:      NewHoldTracker(opts.HoldWindow),
		gameState: game.State(),
		now:       time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapCommand(msg) {
	case CommandQuit:
		m.abortRun("quit")
		m.quitting = true
		return m, tea.Quit
	case CommandBack:
		m.abortRun("back")
		m.backToMenu = true
		return m, tea.Quit
	case CommandPause:
		m.paused = !m.paused
		m.hold.Release()
		return m, nil
	case CommandScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			logger.Warn("screenshot failed", "error", err)
		} else {
			logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if b, ok := m.keyMapper.MapKey(msg); ok && !m.paused {
		m.hold.Press(b, m.now())
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	m.frame = m.frame.Advance(m.hold.Down(m.now()))
	result := m.game.Step(m.frame)
	m.gameState = result.State

	if result.Started {
		m.startRun()
	}
	if result.Finished != nil {
		m.finishRun(*result.Finished)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) startRun() {
	if m.runSpan != nil {
		telemetry.AbortRun(m.runSpan, "restarted")
	}
	_, m.runSpan = telemetry.StartRun(context.Background(), m.opts.Tracer, m.game.ID(), m.opts.Player)
	logger.Info("run started", "mode", m.game.ID(), "player", m.opts.Player)
}

func (m *Model) finishRun(sum core.RunSummary) {
	if m.runSpan != nil {
		telemetry.EndRun(m.runSpan, sum)
		m.runSpan = nil
	}
	logger.Info("run finished",
		"mode", m.game.ID(),
		"level", sum.Level,
		"start", sum.StartLevel,
		"ticks", sum.Ticks,
		"completed", sum.Completed,
	)

	if m.store == nil {
		return
	}
	// Best-effort save, game continues regardless
	_, err := m.store.SaveRun(storage.RunRecord{
		ModeID:     m.game.ID(),
		Player:     m.opts.Player,
		StartLevel: sum.StartLevel,
		Level:      sum.Level,
		Ticks:      sum.Ticks,
		Completed:  sum.Completed,
	})
	if err != nil {
		logger.Error("could not save run", "mode", m.game.ID(), "error", err)
		return
	}
	m.savedRuns++
}

func (m *Model) abortRun(reason string) {
	if m.runSpan != nil {
		telemetry.AbortRun(m.runSpan, reason)
		m.runSpan = nil
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".tgm", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// SavedRuns returns how many runs this model stored.
func (m Model) SavedRuns() int {
	return m.savedRuns
}

// Result is the outcome of a standalone game program.
type Result struct {
	BackToMenu bool
	Config     core.RuntimeConfig
}

// Run plays game in its own Bubble Tea program until the player quits or
// goes back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, store, cfg, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Result{Config: cfg}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Result{Config: cfg}, nil
	}
	return Result{BackToMenu: m.backToMenu, Config: m.config}, nil
}
