package game2048

// MinSize is the smallest supported board dimension.
const MinSize = 4

// Board is an n x n grid of tiles. A cell holds 0 when empty or a power of
// two >= 2. A board is mutable and owned by a single Game; independent
// branches must Clone first.
type Board [][]int

// NewBoard allocates an all-zero size x size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for i := range b {
		b[i] = make([]int, size)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for i, row := range b {
		c[i] = make([]int, len(row))
		copy(c[i], row)
	}
	return c
}

// Equal reports whether both boards hold the same tiles.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for i, row := range b {
		if len(row) != len(other[i]) {
			return false
		}
		for j, v := range row {
			if v != other[i][j] {
				return false
			}
		}
	}
	return true
}

// CellPos identifies a board position.
type CellPos struct {
	X, Y int
}

// EmptyCells returns the coordinates of all empty cells.
func (b Board) EmptyCells() []CellPos {
	var cells []CellPos
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, CellPos{X: x, Y: y})
			}
		}
	}
	return cells
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// slideLine compacts and merges a single line toward index 0, writing the
// result into dst. Non-zero tiles keep their relative order; adjacent equal
// tiles merge into one tile of double value, scanned in slide direction, and
// a tile produced by a merge is not eligible to merge again in the same
// pass. Returns the score gained: the sum of the values of all merged tiles.
func slideLine(src, dst []int) int {
	score := 0
	w := 0
	merged := false // whether dst[w-1] was produced by a merge

	for _, v := range src {
		if v == 0 {
			continue
		}
		if w > 0 && !merged && dst[w-1] == v {
			dst[w-1] *= 2
			score += dst[w-1]
			merged = true
		} else {
			dst[w] = v
			w++
			merged = false
		}
	}
	for i := w; i < len(dst); i++ {
		dst[i] = 0
	}
	return score
}

// Slide applies a move in the given direction without mutating the receiver.
// Every row (Left/Right) or column (Up/Down) is slid and merged
// independently by the same line routine, oriented so the target edge is at
// index 0. Returns the resulting board, the total score gained from merges,
// and whether the result differs from the current board. A direction is
// legal exactly when changed is true.
func (b Board) Slide(dir Direction) (next Board, score int, changed bool) {
	n := b.Size()
	next = NewBoard(n)
	src := make([]int, n)
	dst := make([]int, n)

	for i := 0; i < n; i++ {
		b.readLine(dir, i, src)
		score += slideLine(src, dst)
		next.writeLine(dir, i, dst)
	}
	return next, score, !b.Equal(next)
}

// readLine copies line i of the board into buf, oriented so that the slide
// target edge is at index 0. Lines are rows for Left/Right and columns for
// Up/Down.
func (b Board) readLine(dir Direction, i int, buf []int) {
	n := len(buf)
	for j := 0; j < n; j++ {
		switch dir {
		case Left:
			buf[j] = b[i][j]
		case Right:
			buf[j] = b[i][n-1-j]
		case Up:
			buf[j] = b[j][i]
		case Down:
			buf[j] = b[n-1-j][i]
		}
	}
}

// writeLine scatters buf back into line i of the board, inverting the
// orientation applied by readLine.
func (b Board) writeLine(dir Direction, i int, buf []int) {
	n := len(buf)
	for j := 0; j < n; j++ {
		switch dir {
		case Left:
			b[i][j] = buf[j]
		case Right:
			b[i][n-1-j] = buf[j]
		case Up:
			b[j][i] = buf[j]
		case Down:
			b[n-1-j][i] = buf[j]
		}
	}
}
