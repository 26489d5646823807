// Package config provides YAML-based configuration loading for the game
// and the move search.
package config

import "fmt"

// Config is the full on-disk configuration.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Search SearchConfig `yaml:"search"`
}

// BoardConfig defines the board parameters.
type BoardConfig struct {
	Size   int     `yaml:"size"`   // Side length, at least 4
	Spawn4 float64 `yaml:"spawn4"` // Probability a spawned tile is a 4
	Seed   int64   `yaml:"seed"`   // RNG seed; 0 seeds from current time
}

// SearchConfig defines the move search parameters.
type SearchConfig struct {
	Depth   int `yaml:"depth"`   // Total rollouts per search
	Threads int `yaml:"threads"` // Worker count; 0 means one per CPU
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Board.Size < 4 {
		return fmt.Errorf("board.size must be at least 4, got %d", c.Board.Size)
	}
	if c.Board.Spawn4 < 0 || c.Board.Spawn4 > 1 {
		return fmt.Errorf("board.spawn4 must be in [0, 1], got %g", c.Board.Spawn4)
	}
	if c.Search.Depth < 1 {
		return fmt.Errorf("search.depth must be positive, got %d", c.Search.Depth)
	}
	if c.Search.Threads < 0 {
		return fmt.Errorf("search.threads must not be negative, got %d", c.Search.Threads)
	}
	return nil
}
