package core

// RuntimeConfig contains configuration passed to the platform layer at
// startup. Screen size adapts to the terminal; the two rates keep the
// simulation and the display on independent clocks.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 30)
	FrameRate int   // Render frames per second (default 60)
	Seed      int64 // RNG seed for deterministic food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  30,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in the platform layer
	}
}
