package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grandmaster/internal/platform/tui"
	"github.com/vovakirdan/tui-grandmaster/internal/registry"
	"github.com/vovakirdan/tui-grandmaster/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs for the specified rule mode, ranked by level
reached and then by time. A '*' marks runs that reached the level cap.

Examples:
  tgm scores classic
  tgm scores master --limit 25`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
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
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(modeID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tgm play %s' to record the first one!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-12s  %s\n", "Rank", "Level", "Start", "Time", "Player", "When")
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		level := fmt.Sprintf("%d", r.Level)
		if r.Completed {
			level += "*"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-6s  %-5d  %-8s  %-12s  %s\n",
			i+1, level, r.StartLevel, tui.FormatTicks(r.Ticks, flagFPS), player, humanize.Time(r.CreatedAt))
	}

	stats, err := store.ModeStats(modeID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Runs: %s  Completed: %d  Best: %d  Average: %.1f  Played: %s\n",
			humanize.Comma(int64(stats.Runs)), stats.Completed, stats.BestLevel, stats.AvgLevel,
			tui.FormatTicks(int(stats.TotalTicks), flagFPS))
	}
}
