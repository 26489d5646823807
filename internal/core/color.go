package core

// Color is a foreground color for a screen cell. The platform layer maps
// each value to an ANSI color when rendering.
type Color uint8

// Predefined colors. Tiles cycle through the palette by value; overlays and
// status text pick from it directly.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
