package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
	"github.com/vovakirdan/tui-grandmaster/internal/games/tgm"
	"github.com/vovakirdan/tui-grandmaster/internal/platform/tui"
	"github.com/vovakirdan/tui-grandmaster/internal/registry"
)

var flagSimTicks int

var simCmd = &cobra.Command{
	Use:   "sim <mode>",
	Short: "Run a scripted game without a terminal",
	Long: `Drive a mode headlessly with a fixed input script and print the
final state. Two runs with the same mode, seed and tick count always
print the same digest.

Examples:
  tgm sim classic
  tgm sim master --ticks 36000 --seed 7`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
}

func runSim(_ *cobra.Command, args []string) {
	modeID := args[0]
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		os.Exit(1)
	}

	game := tgm.New(modeID)
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})
	if err := game.ConfigError(); err != nil {
		tui.Logger().Warn("rule file rejected, using built-in rules", "mode", modeID, "error", err)
	}

	finished := tgm.RunBot(game, flagSimTicks)
	for _, run := range finished {
		tui.Logger().Info("run finished", "level", run.Level, "ticks", run.Ticks, "completed", run.Completed)
	}

	snap := game.Snapshot()
	screen := core.NewScreen(80, 24)
	game.Render(screen)
	fmt.Println(screen.String())
	fmt.Printf("mode:     %s (%s)\n", game.ID(), game.Title())
	fmt.Printf("seed:     %d\n", seed)
	fmt.Printf("ticks:    %d\n", snap.Tick)
	fmt.Printf("screen:   %s\n", snap.Screen)
	fmt.Printf("level:    %d\n", snap.Level)
	fmt.Printf("finished: %d\n", len(finished))
	fmt.Printf("digest:   %016x\n", snap.Digest())
}
