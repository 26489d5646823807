// Package game2048 implements the sliding-tile merge puzzle on a square
// board of configurable size. A Game owns its board, score, and a cached
// transition for each of the four directions; the cache is recomputed in
// full after every board mutation so legality and terminal state are always
// known without re-sliding.
package game2048

import (
	"fmt"
	"strconv"
	"strings"
)

// WinTile is the tile value that marks a game as won.
const WinTile = 2048

// transition caches the outcome of sliding the current board in one
// direction: the board the move would produce, the score it would gain, and
// whether it differs from the current board.
type transition struct {
	board Board
	score int
	legal bool
}

// MoveResult reports what a successful move did.
type MoveResult struct {
	// ScoreGained is the score delta from merges performed by the move.
	ScoreGained int
	// JustWon is true when this move reached the winning tile for the
	// first time. The game continues; IsWon stays true from here on.
	JustWon bool
	// Terminal is true when no legal moves remain after this move.
	Terminal bool
}

// Game is a single 2048 game. It is not safe for concurrent use; rollout
// branches must be created from a board copy instead of sharing an instance.
type Game struct {
	board       Board
	score       int
	transitions [4]transition
	terminal    bool
	won         bool
	rng         Rand
	spawn4      float64
}

// New creates a game on an empty size x size board and spawns the first
// tile. Returns ErrInvalidSize when size is below MinSize.
func New(size int, opts ...Option) (*Game, error) {
	if size < MinSize {
		return nil, ErrInvalidSize
	}

	g := newGame(NewBoard(size), opts)
	g.spawnTile()
	g.refresh()
	return g, nil
}

// NewFromBoard creates a game from an existing board. The cells are deep
// copied and validated: the grid must be square (ErrInvalidBoard) with side
// at least MinSize (ErrInvalidSize), and every cell must be 0 or a power of
// two starting from 2 (ErrInvalidValue; 1 is explicitly invalid). No tile is
// spawned, so legality and terminal state reflect the input exactly. Score
// starts at zero.
func NewFromBoard(cells [][]int, opts ...Option) (*Game, error) {
	n := len(cells)
	if n < MinSize {
		return nil, ErrInvalidSize
	}
	for _, row := range cells {
		if len(row) != n {
			return nil, ErrInvalidBoard
		}
	}
	for _, row := range cells {
		for _, v := range row {
			if !validTile(v) {
				return nil, ErrInvalidValue
			}
		}
	}

	g := newGame(Board(cells).Clone(), opts)
	g.refresh()
	return g, nil
}

// validTile reports whether v is 0 or a power of two >= 2.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

func newGame(b Board, opts []Option) *Game {
	g := &Game{
		board:  b,
		spawn4: defaultSpawn4,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = newRand()
	}
	return g
}

// Move applies a move in the given direction. If the direction is not
// currently legal the game is left unchanged and ErrInvalidMove is returned.
// Otherwise the cached transition is adopted, exactly one new tile is
// spawned, and the transition cache and flags are recomputed.
func (g *Game) Move(dir Direction) (MoveResult, error) {
	t := g.transitions[dir]
	if !t.legal {
		return MoveResult{}, ErrInvalidMove
	}

	wonBefore := g.won
	g.board = t.board
	g.score += t.score
	g.spawnTile()
	g.refresh()

	return MoveResult{
		ScoreGained: t.score,
		JustWon:     g.won && !wonBefore,
		Terminal:    g.terminal,
	}, nil
}

// refresh recomputes the per-direction transition cache and the terminal and
// victory flags from the current board. It runs after construction and after
// every successful move; the cache is never partially updated.
func (g *Game) refresh() {
	g.terminal = true
	for _, dir := range Directions {
		board, score, changed := g.board.Slide(dir)
		g.transitions[dir] = transition{board: board, score: score, legal: changed}
		if changed {
			g.terminal = false
		}
	}
	if !g.won && g.board.MaxTile() >= WinTile {
		g.won = true
	}
}

// LegalMoves returns the directions whose transforms change the board, in
// fixed (Left, Right, Up, Down) order. The result is empty exactly when the
// game is terminal.
func (g *Game) LegalMoves() []Direction {
	moves := make([]Direction, 0, 4)
	for _, dir := range Directions {
		if g.transitions[dir].legal {
			moves = append(moves, dir)
		}
	}
	return moves
}

// IsTerminal reports whether no direction is currently legal.
func (g *Game) IsTerminal() bool {
	return g.terminal
}

// IsWon reports whether the winning tile was ever reached. Once true it
// stays true for the lifetime of the game.
func (g *Game) IsWon() bool {
	return g.won
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.board.Size()
}

// Board returns a copy of the current board. The game keeps exclusive
// ownership of its own grid.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// String renders the board with aligned columns followed by the score, for
// plain terminal output.
func (g *Game) String() string {
	width := len(strconv.Itoa(g.board.MaxTile())) + 1

	var sb strings.Builder
	sb.WriteString("Board:\n")
	for _, row := range g.board {
		for _, v := range row {
			fmt.Fprintf(&sb, "%*d", width, v)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Score: %d\n", g.score)
	return sb.String()
}
