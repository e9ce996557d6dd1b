package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     uint64 // RNG seed for deterministic piece sequences
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Level reached in the current or last run
	InRun    bool // A run is in progress (between game start and game over)
	GameOver bool // The game over screen is showing
}

// RunSummary describes a finished run.
type RunSummary struct {
	StartLevel int
	Level      int
	Ticks      int  // Ticks from game start to game over
	Completed  bool // Reached the level cap
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Started is set on the tick a new run begins.
	Started bool
	// Finished is set on the tick a run ends.
	Finished *RunSummary
}
