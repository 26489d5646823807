package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size:   4,
			Spawn4: 0.1,
			Seed:   0,
		},
		Search: SearchConfig{
			Depth:   1000,
			Threads: 0, // one worker per CPU
		},
	}
}
