package game2048

import "lukechampine.com/frand"

// defaultSpawn4 is the probability that a spawned tile is a 4 rather than a 2.
const defaultSpawn4 = 0.10

// Rand is the source of randomness used for tile spawning. Both
// *math/rand.Rand and *frand.RNG satisfy it. Every Game must own its source:
// sharing one across concurrently simulated games is a data race.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRand sets the randomness source used for tile spawning. Pass a seeded
// *math/rand.Rand for deterministic sessions; the default is an independent
// frand source per game.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithSpawn4Chance sets the probability that a spawned tile is a 4 instead
// of a 2. Values outside [0, 1] are ignored.
func WithSpawn4Chance(p float64) Option {
	return func(g *Game) {
		if p >= 0 && p <= 1 {
			g.spawn4 = p
		}
	}
}

// spawnTile places a new tile on a uniformly chosen empty cell: a 2, or a 4
// with probability spawn4. Calling it on a full board is a programming
// error; a successful move always frees at least one cell first.
func (g *Game) spawnTile() {
	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		panic("game2048: spawnTile called on a full board")
	}

	cell := empty[g.rng.Intn(len(empty))]
	value := 2
	if g.rng.Float64() < g.spawn4 {
		value = 4
	}
	g.board[cell.Y][cell.X] = value
}

// newRand returns the default per-game randomness source.
func newRand() Rand {
	return frand.New()
}
