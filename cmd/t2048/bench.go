package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var flagGames int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure the advisor over many games",
	Long: `Play several complete advisor games and report score statistics.
Useful for comparing depth and thread settings.

Examples:
  t2048 bench --games 20
  t2048 bench --games 10 --depth 500
  t2048 bench --games 10 --size 5`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
}

func runBench(cmd *cobra.Command, _ []string) {
	cfg, err := buildRuntimeConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagGames < 1 {
		fmt.Fprintf(os.Stderr, "Error: --games must be positive, got %d\n", flagGames)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	logger.Info("starting benchmark",
		"games", flagGames,
		"size", cfg.BoardSize,
		"depth", cfg.Depth,
		"threads", cfg.Threads,
	)

	// A fixed --seed makes every game identical, which defeats the
	// benchmark; each game gets its own seed instead.
	cfg.Seed = 0

	totalScore := 0
	bestScore := 0
	bestTile := 0
	wins := 0
	start := time.Now()

	for i := 1; i <= flagGames; i++ {
		result, err := runAIGame(cfg, nil)
		if err != nil {
			logger.Fatal("game failed", "game", i, "error", err)
		}

		totalScore += result.score
		if result.score > bestScore {
			bestScore = result.score
		}
		if result.maxTile > bestTile {
			bestTile = result.maxTile
		}
		if result.won {
			wins++
		}

		logger.Info("game finished",
			"game", i,
			"score", result.score,
			"max_tile", result.maxTile,
			"moves", result.moves,
			"won", result.won,
			"duration", result.duration.Round(time.Millisecond),
		)
	}

	logger.Info("benchmark complete",
		"games", flagGames,
		"mean_score", totalScore/flagGames,
		"best_score", bestScore,
		"best_tile", bestTile,
		"win_rate", fmt.Sprintf("%.0f%%", float64(wins)/float64(flagGames)*100),
		"total_duration", time.Since(start).Round(time.Millisecond),
	)
}
