package ai

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/vovakirdan/tui-2048/internal/game2048"
)

// DefaultDepth is the recommended total rollout count per search.
const DefaultDepth = 1000

// Searcher recommends moves by statistical estimation: for every legal
// direction it schedules independent rollouts on a fixed pool of worker
// goroutines and sums the final scores per direction. Ties go to the
// lowest-indexed direction in (Left, Right, Up, Down) order; beyond that
// tie-break the result is not reproducible across runs, since rollouts are
// randomized.
type Searcher struct {
	depth   int
	threads int
}

// NewSearcher creates a Searcher targeting at least depth rollouts per
// search. Worker count defaults to the detected hardware parallelism.
func NewSearcher(depth int) *Searcher {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Searcher{
		depth:   depth,
		threads: max(1, runtime.NumCPU()),
	}
}

// SetThreads overrides the worker count. Values below 1 are clamped to 1.
func (s *Searcher) SetThreads(n int) {
	s.threads = max(1, n)
}

// Threads returns the worker count used per search.
func (s *Searcher) Threads() int {
	return s.threads
}

// perWorkerRollouts splits the rollout budget evenly over every
// (direction, worker) pair, rounding up so the total executed is always at
// least the configured depth.
func (s *Searcher) perWorkerRollouts(moves int) int {
	per := s.depth / (moves * s.threads)
	if per == 0 {
		per = 1
	} else if per*moves*s.threads != s.depth {
		per++
	}
	return per
}

// BestMove estimates the best move for the game's current position and
// blocks until every scheduled rollout completes. With no legal move it
// returns ErrNoValidMove; with exactly one it returns that move immediately
// without simulating.
func (s *Searcher) BestMove(g *game2048.Game) (game2048.Direction, error) {
	legal := g.LegalMoves()
	switch len(legal) {
	case 0:
		return 0, game2048.ErrNoValidMove
	case 1:
		return legal[0], nil
	}

	perWorker := s.perWorkerRollouts(len(legal))
	board := g.Board()

	// One accumulator per direction. Each worker sums its rollouts
	// locally and publishes once, so the simulations themselves run
	// lock-free on private board clones.
	var totals [4]atomic.Int64

	var eg errgroup.Group
	for _, dir := range legal {
		dir := dir
		for t := 0; t < s.threads; t++ {
			eg.Go(func() error {
				rng := frand.New()
				sum := 0
				for i := 0; i < perWorker; i++ {
					sum += rollout(board, dir, rng)
				}
				totals[dir].Add(int64(sum))
				return nil
			})
		}
	}
	// Workers never return errors; Wait is the completion barrier.
	_ = eg.Wait()

	best := legal[0]
	for _, dir := range legal[1:] {
		if totals[dir].Load() > totals[best].Load() {
			best = dir
		}
	}
	return best, nil
}
