package game2048

import "errors"

// Sentinel errors returned by game construction, move application, and move
// search. Construction errors mean no Game was created; ErrInvalidMove and
// ErrNoValidMove leave the game unchanged and are expected outcomes of
// normal play, not exceptional conditions.
var (
	// ErrInvalidSize is returned when the board side is below MinSize.
	ErrInvalidSize = errors.New("invalid board size: must be at least 4")

	// ErrInvalidBoard is returned when a supplied board is not square.
	ErrInvalidBoard = errors.New("invalid board: must be square")

	// ErrInvalidValue is returned when a supplied board contains a cell
	// that is neither 0 nor a power of two starting from 2.
	ErrInvalidValue = errors.New("invalid cell value: must be 0 or a power of two starting from 2")

	// ErrInvalidMove is returned when the requested direction would not
	// change the board. Callers should re-check LegalMoves.
	ErrInvalidMove = errors.New("invalid move: direction is not currently legal")

	// ErrNoValidMove is returned when a best move is requested but the
	// game is terminal.
	ErrNoValidMove = errors.New("no valid move: the game is over")
)
