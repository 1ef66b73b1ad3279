package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fractalite/fractalite/pkg/render"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleStatusBar = lipgloss.NewStyle().Foreground(colorYellow)
	styleHelp      = lipgloss.NewStyle().Foreground(colorWhite)
	styleEditing   = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Grid Colors
// =============================================================================

// cellColors maps palette indices to ANSI 256 colors. Indexed by
// render.Color; order must match the render package's constants.
var cellColors = [render.ColorCount]lipgloss.Color{
	lipgloss.Color("0"),   // black
	lipgloss.Color("238"), // darkgray
	lipgloss.Color("245"), // gray
	lipgloss.Color("255"), // white
	lipgloss.Color("27"),  // blue
	lipgloss.Color("75"),  // lightblue
	lipgloss.Color("37"),  // cyan
	lipgloss.Color("87"),  // lightcyan
	lipgloss.Color("34"),  // green
	lipgloss.Color("83"),  // lightgreen
	lipgloss.Color("220"), // yellow
	lipgloss.Color("229"), // lightyellow
	lipgloss.Color("160"), // red
	lipgloss.Color("203"), // lightred
	lipgloss.Color("127"), // magenta
	lipgloss.Color("213"), // lightmagenta
}

// cellStyles caches one style per palette color so the explorer does not
// rebuild styles for every cell on every frame.
var cellStyles = func() [render.ColorCount]lipgloss.Style {
	var styles [render.ColorCount]lipgloss.Style
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Foreground(cellColors[i])
	}
	return styles
}()

// cellStyle returns the style for a palette color.
func cellStyle(c render.Color) lipgloss.Style {
	if c < render.ColorCount {
		return cellStyles[c]
	}
	return cellStyles[render.ColorWhite]
}

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}
