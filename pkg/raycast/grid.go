package raycast

import (
	"errors"
	"fmt"
	"math"
)

// Cell is the state of a single map tile.
type Cell uint8

const (
	// Empty tiles let rays pass.
	Empty Cell = iota
	// Wall tiles stop rays.
	Wall
)

// String returns the cell name.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// ErrMalformedMap is returned when map data cannot be turned into a Map.
var ErrMalformedMap = errors.New("malformed map")

// CellFromCode converts a numeric cell code into a Cell. Only 0 and 1 are valid.
func CellFromCode(code float64) (Cell, error) {
	switch code {
	case 0:
		return Empty, nil
	case 1:
		return Wall, nil
	}
	return Empty, fmt.Errorf("%w: invalid cell code %v", ErrMalformedMap, code)
}

// Map is an immutable grid of cells addressed by (column, row).
type Map struct {
	w, h int
	data []Cell
}

// NewMap builds a Map from a flat sequence of cell codes. Element n lands in
// cell (n/height, n%height).
func NewMap(cells []float64, width, height int) (*Map, error) {
	if width < 0 || height < 0 {
		err := fmt.Errorf("%w: invalid dimensions %dx%d", ErrMalformedMap, width, height)
		Logger().Debug("map rejected", "reason", err)
		return nil, err
	}
	if len(cells) != width*height {
		err := fmt.Errorf("%w: got %d cells for a %dx%d map", ErrMalformedMap, len(cells), width, height)
		Logger().Debug("map rejected", "reason", err)
		return nil, err
	}
	m := &Map{w: width, h: height, data: make([]Cell, len(cells))}
	for n, code := range cells {
		c, err := CellFromCode(code)
		if err != nil {
			err = fmt.Errorf("cell %d: %w", n, err)
			Logger().Debug("map rejected", "reason", err)
			return nil, err
		}
		m.data[m.index(n/height, n%height)] = c
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.w }

// Height returns the number of rows.
func (m *Map) Height() int { return m.h }

func (m *Map) index(x, y int) int { return x*m.h + y }

// At returns the cell at integer coordinates, or Empty outside the grid.
func (m *Map) At(x, y int) Cell {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return Empty
	}
	return m.data[m.index(x, y)]
}

// interior reports whether p lies strictly inside the grid. Points on the
// outer boundary (x == 0, y == 0) are outside, so row 0 and column 0 are
// never reported as walls.
func (m *Map) interior(p Vec2) bool {
	return p.X > 0 && p.X < float64(m.w) && p.Y > 0 && p.Y < float64(m.h)
}

// IsWall reports whether p is strictly inside the grid and its tile is a wall.
func (m *Map) IsWall(p Vec2) bool {
	return m.WallKind(p) == Wall
}

// WallKind returns the cell under p, or Empty when p is not strictly inside the grid.
func (m *Map) WallKind(p Vec2) Cell {
	if !m.interior(p) {
		return Empty
	}
	return m.At(int(math.Trunc(p.X)), int(math.Trunc(p.Y)))
}

// Cells returns a copy of the map in the same flat layout NewMap accepts.
func (m *Map) Cells() []float64 {
	out := make([]float64, len(m.data))
	for i, c := range m.data {
		out[i] = float64(c)
	}
	return out
}
