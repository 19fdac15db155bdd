package level

// Grid is a fixed-size ring buffer of terrain columns.
// Scrolling moves the head index instead of copying rows, so logical
// column x lives at physical column (head+x) % width.
type Grid struct {
	width  int
	height int
	head   int
	cells  []Cell // row-major, height*width
}

// NewGrid allocates an empty grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the cell at logical column x and row y.
// Out-of-bounds coordinates read as empty.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return CellEmpty
	}
	return g.cells[y*g.width+g.physical(x)]
}

// Column returns a copy of logical column x, top row first.
func (g *Grid) Column(x int) []Cell {
	col := make([]Cell, g.height)
	for y := range col {
		col[y] = g.At(x, y)
	}
	return col
}

func (g *Grid) physical(x int) int {
	return (g.head + x) % g.width
}

// set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) set(x, y int, c Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+g.physical(x)] = c
}

// clearColumn empties every row of logical column x.
func (g *Grid) clearColumn(x int) {
	for y := 0; y < g.height; y++ {
		g.set(x, y, CellEmpty)
	}
}

// advance drops the leftmost column and exposes a cleared column at the
// right edge.
func (g *Grid) advance() {
	g.head = (g.head + 1) % g.width
	g.clearColumn(g.width - 1)
}

// reset empties the grid and rewinds the head.
func (g *Grid) reset() {
	for i := range g.cells {
		g.cells[i] = CellEmpty
	}
	g.head = 0
}
