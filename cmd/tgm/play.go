package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
	"github.com/vovakirdan/tui-grandmaster/internal/platform/tui"
	"github.com/vovakirdan/tui-grandmaster/internal/registry"
	"github.com/vovakirdan/tui-grandmaster/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a rule mode",
	Long: `Start playing the specified rule mode.

Controls:
  Left/Right   - Shift (hold to auto-shift)
  Down         - Soft drop
  Up           - Sonic drop (when the mode allows it)
  Z/M, C/.     - Rotate counter-clockwise
  X/,  V//     - Rotate clockwise
  P            - Pause
  Esc/B        - Back
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Start level select: Up/Down to change, rotate to confirm.

Examples:
  tgm play classic
  tgm play master --seed 42
  tgm play master --config ./rules.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'tgm list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig(), playOptions())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds a RuntimeConfig from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func playOptions() tui.Options {
	opts := tui.Options{HoldWindow: holdWindow()}
	if u, err := user.Current(); err == nil {
		opts.Player = u.Username
	}
	return opts
}

// openStore opens the runs database, or returns nil so play goes on unrecorded.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}
