package core

// Color is a foreground color for a screen cell, mapped to an ANSI palette entry
// by the platform renderer.
type Color uint8

// Palette used by the renderer. Tetromino colors pick the closest entry.
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
	ColorLavender
	ColorPeach
	ColorTeal
)
