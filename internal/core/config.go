package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to fit the canvas to the terminal and for deterministic
// platform generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation frames per second (default 60)
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

// GameState is the summary the platform layer needs after every frame.
type GameState struct {
	Score    int    // Current score
	Phase    string // Name of the current game phase
	GameOver bool   // Whether the run has ended
	Muted    bool   // Whether audio cues are suppressed
}
