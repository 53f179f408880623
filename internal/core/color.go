package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorRed
	ColorGray
)
