package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Non-positive sizes
// become 1.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies on the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Get returns the value at (x, y), or outside when the point is off the grid.
func (g *ByteGrid) Get(x, y int, outside uint8) uint8 {
	if !g.InBounds(x, y) {
		return outside
	}
	return g.data[g.Index(x, y)]
}

// Set writes v at (x, y). Points off the grid are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if g.InBounds(x, y) {
		g.data[g.Index(x, y)] = v
	}
}

// CountNeighbors returns how many of the eight cells around (x, y) are
// non-zero. Cells off the grid count as outside.
func (g *ByteGrid) CountNeighbors(x, y int, outside uint8) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy, outside) != 0 {
				n++
			}
		}
	}
	return n
}

// Rows renders the grid as strings, one per row, using on for non-zero cells.
func (g *ByteGrid) Rows(on, off byte) []string {
	rows := make([]string, g.H)
	line := make([]byte, g.W)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			line[x] = off
			if g.data[g.Index(x, y)] != 0 {
				line[x] = on
			}
		}
		rows[y] = string(line)
	}
	return rows
}
