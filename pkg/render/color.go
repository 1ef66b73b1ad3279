package render

import "strconv"

// Color is a palette index into the sixteen-entry terminal color set.
// Indices are ordered so that quantizer tables read perceptually: dark
// colors for fast escapes, bright colors near the set boundary.
type Color uint8

// The available palette colors.
const (
	ColorBlack Color = iota
	ColorDarkGray
	ColorGray
	ColorWhite
	ColorBlue
	ColorLightBlue
	ColorCyan
	ColorLightCyan
	ColorGreen
	ColorLightGreen
	ColorYellow
	ColorLightYellow
	ColorRed
	ColorLightRed
	ColorMagenta
	ColorLightMagenta

	// ColorCount is the number of palette colors.
	ColorCount
)

var colorNames = [...]string{
	"black", "darkgray", "gray", "white",
	"blue", "lightblue", "cyan", "lightcyan",
	"green", "lightgreen", "yellow", "lightyellow",
	"red", "lightred", "magenta", "lightmagenta",
}

// String returns the lowercase color name, or "color(N)" out of range.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "color(" + strconv.Itoa(int(c)) + ")"
}
