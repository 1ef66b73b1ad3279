package render

import (
	"github.com/fractalite/fractalite/pkg/fractal"
)

// Cell is one quantized display cell: a glyph and a palette color index.
type Cell struct {
	Glyph rune
	Color Color
}

// BlankCell is the placeholder for padding and for cells suppressed by
// differential mode.
var BlankCell = Cell{Glyph: ' ', Color: ColorBlack}

// Quantizer maps iteration grids to display cells. The zero-value Quantizer
// is ready to use in full-repaint mode; enable differential mode to suppress
// redraws of unchanged cells across frames.
//
// A Quantizer belongs to one render session and is not safe for concurrent
// use: the retained previous grid is per-instance state.
type Quantizer struct {
	differential bool
	prev         *fractal.Grid
}

// NewQuantizer creates a quantizer in full-repaint mode.
func NewQuantizer() *Quantizer {
	return &Quantizer{}
}

// SetDifferential toggles differential mode. Disabling it drops the
// retained grid, so re-enabling starts with a full repaint.
func (q *Quantizer) SetDifferential(on bool) {
	q.differential = on
	if !on {
		q.prev = nil
	}
}

// Differential reports whether differential mode is enabled.
func (q *Quantizer) Differential() bool { return q.differential }

// Reset drops the retained previous grid, forcing the next differential
// frame to repaint every cell.
func (q *Quantizer) Reset() {
	q.prev = nil
}

// Quantize maps every grid cell through the selected bucket table and
// returns a cell grid of identical dimensions.
//
// In differential mode, cells whose count matches the retained previous
// grid are emitted as BlankCell. The previous grid only applies when its
// dimensions match; after a resize the whole frame is re-rendered and the
// retained grid replaced.
func (q *Quantizer) Quantize(grid *fractal.Grid, p Palette, d Detail) [][]Cell {
	table := lookupTable(p, d)

	diff := q.differential && q.prev != nil &&
		q.prev.Width() == grid.Width() && q.prev.Height() == grid.Height()

	cells := make([][]Cell, grid.Height())
	for y := 0; y < grid.Height(); y++ {
		row := make([]Cell, grid.Width())
		for x := 0; x < grid.Width(); x++ {
			n := grid.At(x, y)
			if diff && q.prev.At(x, y) == n {
				row[x] = BlankCell
				continue
			}
			row[x] = cellFor(table, n)
		}
		cells[y] = row
	}

	if q.differential {
		q.prev = grid.Clone()
	}
	return cells
}

// QuantizeWindow extracts the windowW x windowH sub-rectangle of the grid
// starting at (startX, startY), centers it inside a targetW x targetH cell
// grid, and quantizes only the in-bounds cells. Padding cells and
// out-of-grid positions receive BlankCell.
//
// Windowed rendering never consults or updates the differential state.
func (q *Quantizer) QuantizeWindow(grid *fractal.Grid, startX, startY, windowW, windowH, targetW, targetH int, p Palette, d Detail) [][]Cell {
	table := lookupTable(p, d)

	offsetX := 0
	if windowW < targetW {
		offsetX = (targetW - windowW) / 2
	}
	offsetY := 0
	if windowH < targetH {
		offsetY = (targetH - windowH) / 2
	}

	cells := make([][]Cell, targetH)
	for ty := 0; ty < targetH; ty++ {
		row := make([]Cell, targetW)
		for tx := 0; tx < targetW; tx++ {
			row[tx] = BlankCell

			inWindow := ty >= offsetY && ty < offsetY+windowH &&
				tx >= offsetX && tx < offsetX+windowW
			if !inWindow {
				continue
			}

			gx := startX + (tx - offsetX)
			gy := startY + (ty - offsetY)
			if gx >= 0 && gx < grid.Width() && gy >= 0 && gy < grid.Height() {
				row[tx] = cellFor(table, grid.At(gx, gy))
			}
		}
		cells[ty] = row
	}
	return cells
}
