package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
)

// Command is a driver-level key that never reaches the simulation.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandBack
	CommandScreenshot
)

// defaultBinds maps key names to playfield buttons. Each rotate direction
// has two binds per hand.
var defaultBinds = map[string]core.Button{
	"up":    core.ButtonUp,
	"down":  core.ButtonDown,
	"left":  core.ButtonLeft,
	"right": core.ButtonRight,
	"z":     core.ButtonRotateCCW1,
	"m":     core.ButtonRotateCCW1,
	"x":     core.ButtonRotateCW1,
	",":     core.ButtonRotateCW1,
	"c":     core.ButtonRotateCCW2,
	".":     core.ButtonRotateCCW2,
	"v":     core.ButtonRotateCW2,
	"/":     core.ButtonRotateCW2,
}

// KeyMapper translates Bubble Tea key messages to buttons and commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	binds map[string]core.Button
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	binds := make(map[string]core.Button, len(defaultBinds))
	for k, b := range defaultBinds {
		binds[k] = b
	}
	return &KeyMapper{binds: binds}
}

// Bind assigns key to b, replacing any previous bind of that key.
func (km *KeyMapper) Bind(key string, b core.Button) {
	km.binds[key] = b
}

// MapKey translates a key message to a playfield button.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Button, bool) {
	b, ok := km.binds[msg.String()]
	return b, ok
}

// MapCommand translates a key message to a driver command.
func (km *KeyMapper) MapCommand(msg tea.KeyMsg) Command {
	switch msg.String() {
	case "ctrl+c", "q":
		return CommandQuit
	case "p":
		return CommandPause
	case "b", "esc":
		return CommandBack
	case "ctrl+s":
		return CommandScreenshot
	}
	return CommandNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "x", "z":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
