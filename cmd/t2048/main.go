// t2048 is a terminal 2048 game with a built-in Monte Carlo move advisor.
//
// Usage:
//
//	t2048 play               - Play interactively in the terminal
//	t2048 solve              - Let the advisor play a full game headless
//	t2048 bench              - Run many advisor games and report statistics
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--size <n>       - Board side length (default: 4)
//	--seed <value>   - RNG seed for reproducible boards
//	--depth <n>      - Rollouts per move recommendation
//	--threads <n>    - Search workers (0 = one per CPU)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

var (
	// Global flags
	flagConfig  string
	flagSize    int
	flagSeed    int64
	flagDepth   int
	flagThreads int
	flagSpawn4  float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal, with a Monte Carlo move advisor",
	Long: `t2048 is a terminal version of the 2048 sliding-tile puzzle on a
board of configurable size, with a parallel Monte Carlo search that can
suggest moves or play entire games by itself.

Available commands:
  play     - Play interactively
  solve    - Watch the advisor play a full game
  bench    - Measure the advisor over many games
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --size 5
  t2048 solve --depth 2000
  t2048 bench --games 20
  t2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags; unset flags defer to the config file.
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 4, "Board side length (minimum 4)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagDepth, "depth", 1000, "Total rollouts per move recommendation")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "Search workers (0 = one per CPU)")
	rootCmd.PersistentFlags().Float64Var(&flagSpawn4, "spawn4", 0.1, "Probability a spawned tile is a 4")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(serveCmd)
}

// buildRuntimeConfig merges the config file with any flags the user set
// explicitly. Flags win over the file; the file wins over built-in defaults.
func buildRuntimeConfig(cmd *cobra.Command) (core.RuntimeConfig, error) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	cfg := core.DefaultConfig()
	cfg.BoardSize = fileCfg.Board.Size
	cfg.Spawn4 = fileCfg.Board.Spawn4
	cfg.Seed = fileCfg.Board.Seed
	cfg.Depth = fileCfg.Search.Depth
	cfg.Threads = fileCfg.Search.Threads

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.BoardSize = flagSize
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("depth") {
		cfg.Depth = flagDepth
	}
	if flags.Changed("threads") {
		cfg.Threads = flagThreads
	}
	if flags.Changed("spawn4") {
		cfg.Spawn4 = flagSpawn4
	}

	if cfg.BoardSize < 4 {
		return cfg, fmt.Errorf("board size must be at least 4, got %d", cfg.BoardSize)
	}
	if cfg.Depth < 1 {
		return cfg, fmt.Errorf("depth must be positive, got %d", cfg.Depth)
	}
	return cfg, nil
}
