package fractal

// Grid holds per-cell escape iteration counts in row-major order.
// Cell values lie in [0, budget] where budget is the effective iteration
// budget of the request that produced the grid; a cell equal to the budget
// did not escape.
//
// Rows are backed by disjoint slices of one allocation, so concurrent
// writers that own distinct rows need no synchronization.
type Grid struct {
	width  int
	height int
	cells  []uint32
}

// NewGrid allocates a zeroed width x height grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint32, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the iteration count at column x, row y.
func (g *Grid) At(x, y int) uint32 {
	return g.cells[y*g.width+x]
}

// Set stores the iteration count at column x, row y.
func (g *Grid) Set(x, y int, n uint32) {
	g.cells[y*g.width+x] = n
}

// Row returns the backing slice for row y. The slice is shared with the
// grid; callers that mutate it own the row.
func (g *Grid) Row(y int) []uint32 {
	return g.cells[y*g.width : (y+1)*g.width]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]uint32, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, n := range g.cells {
		if other.cells[i] != n {
			return false
		}
	}
	return true
}

// Max returns the largest cell value in the grid. Zero for empty grids.
func (g *Grid) Max() uint32 {
	var max uint32
	for _, n := range g.cells {
		if n > max {
			max = n
		}
	}
	return max
}
