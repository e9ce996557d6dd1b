// tgm is a terminal falling-block game with grand master rules.
//
// Usage:
//
//	tgm list              - List available rule modes
//	tgm play <mode>       - Play a mode
//	tgm menu              - Pick modes interactively
//	tgm scores <mode>     - Show the best runs for a mode
//	tgm serve             - Start SSH server for remote play
//	tgm sim <mode>        - Run a scripted headless game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible piece sequences
//	--db <path>        - Set database path (default: ~/.tgm/runs.db)
//	--config <path>    - Use a custom rules YAML file
//	--log-file <path>  - Write logs to a file
//	--hold-ms <ms>     - Key hold window in milliseconds
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grandmaster/internal/games/tgm"
	"github.com/vovakirdan/tui-grandmaster/internal/platform/tui"
	"github.com/vovakirdan/tui-grandmaster/internal/telemetry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    uint64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagHoldMS  int
)

// Set up in PersistentPreRunE and released after the command finishes.
var (
	logFile           *os.File
	telemetryShutdown func(context.Context) error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tgm",
	Short: "TGM - Grand master style falling blocks in your terminal",
	Long: `TGM is a terminal falling-block game played under grand master rules:
20G gravity, lock delay, charged auto-shift and a level counter that
stops at every section boundary until a line is cleared.

Available commands:
  list     - Show all rule modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View the best runs
  serve    - Start SSH server for remote play
  sim      - Run a scripted game without a terminal

Examples:
  tgm list
  tgm play master
  tgm menu
  tgm serve --ssh :2222
  tgm scores classic
  tgm sim master --ticks 3600 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	// Load .env before flags are parsed so OTEL settings reach telemetry
	_ = godotenv.Load()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tgm/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond), "Key hold window in milliseconds")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// setup wires logging, rules and telemetry for every command.
// Full-screen commands log to a file or nowhere; serve and sim log to stderr.
func setup(cmd *cobra.Command, _ []string) error {
	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	case cmd.Name() == serveCmd.Name() || cmd.Name() == simCmd.Name():
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tgm",
	})
	if os.Getenv("TGM_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	tui.SetLogger(logger)

	tgm.SetConfigPath(flagConfig)

	shutdown, err := telemetry.Setup(cmd.Context())
	if err != nil {
		// Play on without tracing
		logger.Warn("telemetry disabled", "error", err)
		shutdown = nil
	}
	telemetryShutdown = shutdown
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if telemetryShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := telemetryShutdown(ctx); err != nil {
			tui.Logger().Warn("telemetry shutdown", "error", err)
		}
		cancel()
	}
	if logFile != nil {
		logFile.Close()
	}
}

// holdWindow converts --hold-ms to a duration.
func holdWindow() time.Duration {
	if flagHoldMS <= 0 {
		return tui.DefaultHoldWindow
	}
	return time.Duration(flagHoldMS) * time.Millisecond
}
