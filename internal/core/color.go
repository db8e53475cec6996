package core

// Color represents a terminal color for the foreground or background of a cell.
// Values other than ColorDefault map onto the 16-color ANSI palette.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
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
)

// ANSI returns the palette index of the color and false for ColorDefault,
// which means "leave the terminal's own color alone".
func (c Color) ANSI() (int, bool) {
	switch {
	case c == ColorDefault:
		return 0, false
	case c <= ColorWhite:
		return int(c - ColorBlack), true
	default:
		// Bright colors sit at 9..15 of the palette.
		return int(c-ColorBrightRed) + 9, true
	}
}
