// Package ai implements a Monte Carlo move search for 2048. It estimates the
// expected final score of each legal move by playing many randomized games
// to completion across parallel workers and recommends the move with the
// highest sum.
package ai

import (
	"github.com/vovakirdan/tui-2048/internal/game2048"
)

// rollout plays one complete simulated game: the given board is branched
// into a fresh zero-score game, the forced first move is applied, and then
// uniformly random legal moves are applied until none remains. Returns the
// final accumulated score. The simulation owns its cloned board and its
// randomness source, so rollouts run concurrently without shared state.
func rollout(board game2048.Board, first game2048.Direction, rng game2048.Rand) int {
	sim, err := game2048.NewFromBoard(board, game2048.WithRand(rng))
	if err != nil {
		panic("ai: rollout branched from an invalid board: " + err.Error())
	}

	res, err := sim.Move(first)
	if err != nil {
		panic("ai: forced first move is not legal: " + err.Error())
	}
	if res.Terminal {
		return sim.Score()
	}

	for !sim.IsTerminal() {
		legal := sim.LegalMoves()
		if _, err := sim.Move(legal[rng.Intn(len(legal))]); err != nil {
			panic("ai: rollout picked an illegal move: " + err.Error())
		}
	}
	return sim.Score()
}
