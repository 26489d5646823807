package game2048

import "testing"

func TestSlideLineMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{2, 2, 4, 0},
			expected: []int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no change needed",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty line",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "wider line",
			input:    []int{2, 2, 0, 4, 4, 8},
			expected: []int{4, 8, 8, 0, 0, 0},
			score:    12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]int, len(tt.input))
			score := slideLine(tt.input, dst)

			if !equalLine(dst, tt.expected) {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, dst, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] sliding left becomes [8, 8, 0, 0], never [16, 0, 0, 0].
	src := []int{4, 4, 4, 4}
	dst := make([]int, 4)
	score := slideLine(src, dst)

	expected := []int{8, 8, 0, 0}
	if !equalLine(dst, expected) {
		t.Errorf("slideLine(%v) = %v, want %v", src, dst, expected)
	}
	if score != 16 {
		t.Errorf("slideLine(%v) score = %d, want 16", src, score)
	}
}

func TestSlideDirections(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected Board
		score    int
	}{
		{
			dir: Left,
			expected: Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 20,
		},
		{
			dir: Right,
			expected: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 20,
		},
		{
			dir: Up,
			expected: Board{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 8,
		},
		{
			dir: Down,
			expected: Board{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			score: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			next, score, changed := board.Slide(tt.dir)

			if !next.Equal(tt.expected) {
				t.Errorf("Slide(%v): got\n%v\nwant\n%v", tt.dir, next, tt.expected)
			}
			if score != tt.score {
				t.Errorf("Slide(%v) score = %d, want %d", tt.dir, score, tt.score)
			}
			if !changed {
				t.Errorf("Slide(%v) should report the board changed", tt.dir)
			}
			// Merges add two equal tiles into one, so sliding never
			// changes the total tile sum.
			if sum(next) != sum(board) {
				t.Errorf("Slide(%v) changed the tile sum: %d -> %d", tt.dir, sum(board), sum(next))
			}
		})
	}
}

func TestSlideDoesNotMutateReceiver(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	original := board.Clone()

	board.Slide(Left)

	if !board.Equal(original) {
		t.Errorf("Slide mutated its receiver: %v", board)
	}
}

func TestSlideNoChange(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	next, score, changed := board.Slide(Left)

	if changed {
		t.Error("Slide(Left) should not change already left-aligned tiles")
	}
	if score != 0 {
		t.Errorf("Slide(Left) score = %d, want 0", score)
	}
	if !next.Equal(board) {
		t.Errorf("Slide(Left) result differs from input: %v", next)
	}
}

func TestSlideOnlyCompaction(t *testing.T) {
	// No merge anywhere, but compaction alone counts as a change.
	board := Board{
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	_, score, changed := board.Slide(Left)

	if !changed {
		t.Error("compaction alone should count as a change")
	}
	if score != 0 {
		t.Errorf("score = %d, want 0 for a slide without merges", score)
	}
}

func TestSlidePreservesSumWithoutMerges(t *testing.T) {
	board := Board{
		{2, 4, 0, 8},
		{0, 16, 0, 0},
		{32, 0, 2, 0},
		{0, 0, 0, 64},
	}

	next, score, _ := board.Slide(Left)

	if score != 0 {
		t.Fatalf("expected merge-free slide, got score %d", score)
	}
	if sum(board) != sum(next) {
		t.Errorf("sliding changed the tile sum: %d -> %d", sum(board), sum(next))
	}
}

func TestSlideFiveByFive(t *testing.T) {
	board := Board{
		{2, 2, 2, 0, 4},
		{0, 0, 0, 0, 0},
		{8, 0, 8, 0, 8},
		{0, 0, 0, 0, 2},
		{4, 4, 4, 4, 0},
	}

	expected := Board{
		{4, 2, 4, 0, 0},
		{0, 0, 0, 0, 0},
		{16, 8, 0, 0, 0},
		{2, 0, 0, 0, 0},
		{8, 8, 0, 0, 0},
	}

	next, score, changed := board.Slide(Left)

	if !next.Equal(expected) {
		t.Errorf("Slide(Left): got\n%v\nwant\n%v", next, expected)
	}
	// 4 + 16 + 8 + 8
	if score != 36 {
		t.Errorf("score = %d, want 36", score)
	}
	if !changed {
		t.Error("Slide(Left) should report the board changed")
	}
}

func TestCloneIndependence(t *testing.T) {
	board := NewBoard(4)
	board[0][0] = 2

	clone := board.Clone()
	clone[0][0] = 4

	if board[0][0] != 2 {
		t.Error("mutating a clone changed the original board")
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := board.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := board.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func equalLine(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sum(b Board) int {
	total := 0
	for _, row := range b {
		for _, v := range row {
			total += v
		}
	}
	return total
}
