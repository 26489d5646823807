package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game2048"
)

const cellHeight = 2 // Height of each cell (including borders)

// tileColors maps the tile's power of two to a palette color, cycling for
// tiles beyond 65536.
var tileColors = []core.Color{
	core.ColorGray,          // 2
	core.ColorWhite,         // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorBrightRed,     // 32
	core.ColorRed,           // 64
	core.ColorBrightYellow,  // 128
	core.ColorBrightGreen,   // 256
	core.ColorGreen,         // 512
	core.ColorBrightCyan,    // 1024
	core.ColorBrightMagenta, // 2048
	core.ColorMagenta,       // 4096
	core.ColorBrightBlue,    // 8192
	core.ColorBlue,          // 16384
	core.ColorBrightWhite,   // 32768
	core.ColorCyan,          // 65536
}

// tileColor returns the display color for a tile value.
func tileColor(v int) core.Color {
	if v < 2 {
		return core.ColorDefault
	}
	exp := 0
	for v > 2 {
		v >>= 1
		exp++
	}
	return tileColors[exp%len(tileColors)]
}

// cellWidth returns the cell width needed to fit every tile on the board,
// with at least one space of padding on each side.
func cellWidth(b game2048.Board) int {
	w := len(strconv.Itoa(b.MaxTile())) + 2
	if w < 5 {
		w = 5
	}
	return w + 1 // +1 for the left border column
}

// boardDims returns the rendered width and height of the grid.
func boardDims(b game2048.Board) (int, int) {
	n := b.Size()
	return n*cellWidth(b) + 1, n*cellHeight + 1
}

// renderBoard draws the grid with colored tiles at (boardX, boardY).
func renderBoard(dst *core.Screen, b game2048.Board, boardX, boardY int) {
	n := b.Size()
	cw := cellWidth(b)

	// Grid borders
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			px := boardX + x*cw
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < n {
				for i := 1; i < cw; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles, centered in their cells
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			val := b[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cw + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cw - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderHUD draws the title, score, and max tile above the board.
func renderHUD(dst *core.Screen, g *game2048.Game, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.Score())
	dst.DrawTextColored(boardX, 1, scoreStr, core.ColorCyan)

	maxStr := fmt.Sprintf("Max: %d", g.Board().MaxTile())
	maxX := boardX + boardW - len(maxStr)
	if maxX < boardX {
		maxX = boardX
	}
	dst.DrawText(maxX, 1, maxStr)
}

// drawOverlay draws a centered boxed overlay on top of the board.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
