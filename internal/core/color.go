package core

// Color represents a foreground color for a screen cell.
// Shells map these onto lipgloss or tcell styles.
type Color uint8

// Predefined colors for runner elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette holds the 256-color terminal index of each color. Both shells
// draw from it so the two backends look the same.
var palette = [...]int{
	ColorRed:          1,
	ColorGreen:        2,
	ColorYellow:       3,
	ColorBlue:         4,
	ColorCyan:         6,
	ColorWhite:        7,
	ColorBrightRed:    9,
	ColorBrightYellow: 11,
	ColorBrightCyan:   14,
	ColorBrightWhite:  15,
	ColorOrange:       208,
	ColorGray:         245,
}

// Palette returns the 256-color index for c, or -1 for ColorDefault and
// unknown colors, which use the terminal's own foreground.
func (c Color) Palette() int {
	if c == ColorDefault || int(c) >= len(palette) {
		return -1
	}
	return palette[c]
}
