package game2048

// Direction represents a move direction.
// The declaration order (Left, Right, Up, Down) is fixed: it indexes the
// per-direction transition cache and is the tie-break order for move search.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists all four directions in tie-break order.
var Directions = [4]Direction{Left, Right, Up, Down}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}
