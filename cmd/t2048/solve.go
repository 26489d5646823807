package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game2048"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Let the advisor play a full game headless",
	Long: `Play one complete game with the Monte Carlo advisor choosing every
move, then print the final board and score.

Examples:
  t2048 solve
  t2048 solve --depth 2000 --threads 4
  t2048 solve --size 5 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func runSolve(cmd *cobra.Command, _ []string) {
	cfg, err := buildRuntimeConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})

	result, err := runAIGame(cfg, logger)
	if err != nil {
		logger.Fatal("game failed", "error", err)
	}

	fmt.Print(result.finalBoard)
	logger.Info("game over",
		"score", result.score,
		"max_tile", result.maxTile,
		"moves", result.moves,
		"won", result.won,
		"duration", result.duration.Round(time.Millisecond),
	)
}

// gameResult summarizes one completed advisor game.
type gameResult struct {
	score      int
	maxTile    int
	moves      int
	won        bool
	duration   time.Duration
	finalBoard string
}

// runAIGame plays one full game with the advisor. A nil logger silences the
// per-milestone progress output.
func runAIGame(cfg core.RuntimeConfig, logger *log.Logger) (gameResult, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := game2048.New(cfg.BoardSize,
		game2048.WithRand(rand.New(rand.NewSource(seed))),
		game2048.WithSpawn4Chance(cfg.Spawn4),
	)
	if err != nil {
		return gameResult{}, err
	}

	searcher := ai.NewSearcher(cfg.Depth)
	if cfg.Threads > 0 {
		searcher.SetThreads(cfg.Threads)
	}

	start := time.Now()
	moves := 0
	for !game.IsTerminal() {
		dir, err := searcher.BestMove(game)
		if err != nil {
			return gameResult{}, err
		}
		res, err := game.Move(dir)
		if err != nil {
			return gameResult{}, err
		}
		moves++

		if logger != nil && res.JustWon {
			logger.Info("reached the winning tile", "score", game.Score(), "moves", moves)
		}
		if logger != nil && moves%100 == 0 {
			logger.Info("progress", "moves", moves, "score", game.Score(), "max_tile", game.Board().MaxTile())
		}
	}

	return gameResult{
		score:      game.Score(),
		maxTile:    game.Board().MaxTile(),
		moves:      moves,
		won:        game.IsWon(),
		duration:   time.Since(start),
		finalBoard: game.String(),
	}, nil
}
