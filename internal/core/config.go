package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation and fixed-step timing.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState communicates a game's status to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	Gems     int  // Gems collected this run
	Lives    int  // Remaining lives
	Replay   int  // How many times the player chose "play again"
	GameOver bool // Whether the current run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
