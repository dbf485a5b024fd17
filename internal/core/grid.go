package core

// Grid stores a 2D grid of live/dead cells in row-major order. A cell's
// position is implied by its offset: index i is column i%W of row i/W.
type Grid struct {
	W, H  int
	cells []bool
}

// directions lists the Moore neighborhood offsets as (dRow, dCol) pairs in
// the fixed enumeration order used by NeighborsOf.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 {
		return nil, ConfigErrorf("width must be positive, got %d", w)
	}
	if h <= 0 {
		return nil, ConfigErrorf("height must be positive, got %d", h)
	}
	return &Grid{W: w, H: h, cells: make([]bool, w*h)}, nil
}

// IndexOf returns the linear index of column x in row y for a grid of the
// given width. Callers keep x and y in bounds.
func IndexOf(x, y, width int) int { return y*width + x }

// NeighborsOf returns the in-bounds Moore neighbors of index. Edges do not
// wrap, so corner cells have 3 neighbors and other border cells 5.
func NeighborsOf(index, width, height int) []int {
	return appendNeighbors(make([]int, 0, len(directions)), index, width, height)
}

func appendNeighbors(dst []int, index, width, height int) []int {
	row, col := index/width, index%width
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= height || c < 0 || c >= width {
			continue
		}
		dst = append(dst, IndexOf(c, r, width))
	}
	return dst
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Len reports the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return IndexOf(x, y, g.W) }

// Coords maps a linear index back to (x, y).
func (g *Grid) Coords(i int) (x, y int) { return i % g.W, i / g.W }

// Neighbors appends the neighbor indices of i to buf[:0] and returns it.
func (g *Grid) Neighbors(i int, buf []int) []int {
	return appendNeighbors(buf[:0], i, g.W, g.H)
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reports the state at (x, y). Out-of-bounds cells read as dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.Index(x, y)]
}

// Set assigns the state at (x, y); out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = alive
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// CopyFrom overwrites g with src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, cells: append([]bool(nil), g.cells...)}
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// Each visits every cell in row-major order with its coordinates.
func (g *Grid) Each(fn func(x, y int, alive bool)) {
	for i, alive := range g.cells {
		fn(i%g.W, i/g.W, alive)
	}
}
