package render

import (
	"strings"

	"github.com/fractalite/fractalite/pkg/fractal"
)

// Text renders a grid as newline-delimited glyph rows, one rune per cell.
// This is the diagnostic/headless wire format: for a given grid, palette,
// and detail level the output is reproducible byte for byte. Colors are
// not encoded.
func Text(grid *fractal.Grid, p Palette, d Detail) string {
	table := lookupTable(p, d)

	var b strings.Builder
	b.Grow(grid.Height() * (grid.Width() + 1))
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			b.WriteRune(cellFor(table, grid.At(x, y)).Glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
