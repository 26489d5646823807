package core

// RuntimeConfig carries the settings a session needs at initialization,
// merged from the config file and command-line flags before the UI starts.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in characters
	ScreenH   int     // Screen height in characters
	BoardSize int     // Board side length, at least 4
	Seed      int64   // RNG seed; 0 means seed from current time
	Depth     int     // Total rollouts per move search
	Threads   int     // Search worker count; 0 means one per CPU
	Spawn4    float64 // Probability a spawned tile is a 4
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		BoardSize: 4,
		Seed:      0,
		Depth:     1000,
		Threads:   0,
		Spawn4:    0.1,
	}
}
