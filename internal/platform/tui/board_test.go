package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game2048"
)

func TestTileColor(t *testing.T) {
	tests := []struct {
		value    int
		expected core.Color
	}{
		{0, core.ColorDefault},
		{2, core.ColorGray},
		{4, core.ColorWhite},
		{2048, core.ColorBrightMagenta},
		{65536, core.ColorCyan},
		{131072, core.ColorGray}, // palette wraps around
	}

	for _, tt := range tests {
		if got := tileColor(tt.value); got != tt.expected {
			t.Errorf("tileColor(%d) = %d, expected %d", tt.value, got, tt.expected)
		}
	}
}

func TestCellWidthGrowsWithTiles(t *testing.T) {
	small := game2048.Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	big := game2048.Board{
		{65536, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if cellWidth(small) >= cellWidth(big) {
		t.Errorf("cellWidth should grow with tile width: %d vs %d", cellWidth(small), cellWidth(big))
	}
}

func TestRenderBoardDrawsTilesAndGrid(t *testing.T) {
	board := game2048.Board{
		{2, 0, 0, 0},
		{0, 16, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 128},
	}

	s := core.NewScreen(60, 20)
	renderBoard(s, board, 0, 0)

	out := s.String()
	for _, want := range []string{"2", "16", "128", "┌", "┘", "┼"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered board missing %q:\n%s", want, out)
		}
	}

	if c := s.GetCell(0, 0); c.Rune != '┌' {
		t.Errorf("expected top-left corner, got %q", c.Rune)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "abcde")
	s.DrawText(0, 1, "fghij")

	out := RenderScreen(s)
	if !strings.Contains(out, "abcde") || !strings.Contains(out, "fghij") {
		t.Errorf("RenderScreen dropped uncolored text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen should join rows with newlines, got %q", out)
	}
}

func TestStyleForUnknownColorFallsBack(t *testing.T) {
	got := styleFor(core.Color(250)).Render("x")
	want := styleFor(core.ColorDefault).Render("x")
	if got != want {
		t.Errorf("styleFor(250) rendered %q, expected the default style output %q", got, want)
	}
}

func TestDrawOverlayClearsBackground(t *testing.T) {
	s := core.NewScreen(40, 12)
	for y := 0; y < 12; y++ {
		s.DrawText(0, y, strings.Repeat("#", 40))
	}

	drawOverlay(s, 20, 6, "GAME OVER")

	out := s.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("overlay text missing:\n%s", out)
	}
	// The row with the text starts and ends inside the cleared box.
	if !strings.Contains(out, "│ GAME OVER") && !strings.Contains(out, "GAME OVER ") {
		t.Errorf("overlay background not cleared:\n%s", out)
	}
}
