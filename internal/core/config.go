package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game as the platform sees it.
type GameState struct {
	Score1   int      // Left player score
	Score2   int      // Right player score
	GameOver bool     // Whether the match has been won
	Paused   bool     // Whether the game is paused
	Winner   PlayerID // Set once GameOver is true
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Scorer is the player who scored during this tick, PlayerNone otherwise.
	Scorer PlayerID

	// MatchEnded is true only for the tick on which the match was won.
	MatchEnded bool
}
