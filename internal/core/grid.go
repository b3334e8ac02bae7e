package core

import (
	"fmt"
	"slices"
)

// Grid stores an immutable rows×cols matrix of binary cells in row-major
// order. Mutating operations return a new Grid and leave the receiver intact.
type Grid struct {
	rows, cols int
	data       []uint8
}

func newGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size reports the grid dimensions with W as columns and H as rows.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Cells exposes the backing slice for rendering. Callers must not write to it.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (r, c).
func (g *Grid) Index(r, c int) int { return r*g.cols + c }

// Contains reports whether (r, c) lies inside the grid.
func (g *Grid) Contains(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

func (g *Grid) check(r, c int) error {
	if !g.Contains(r, c) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, r, c, g.rows, g.cols)
	}
	return nil
}

// Get reports whether cell (r, c) is alive.
func (g *Grid) Get(r, c int) (bool, error) {
	if err := g.check(r, c); err != nil {
		return false, err
	}
	return g.data[g.Index(r, c)] != 0, nil
}

// Toggle returns a copy of the grid with cell (r, c) flipped.
func (g *Grid) Toggle(r, c int) (*Grid, error) {
	if err := g.check(r, c); err != nil {
		return nil, err
	}
	out := g.Clone()
	out.data[out.Index(r, c)] ^= 1
	return out, nil
}

// Set returns a copy of the grid with cell (r, c) forced to alive.
func (g *Grid) Set(r, c int, alive bool) (*Grid, error) {
	if err := g.check(r, c); err != nil {
		return nil, err
	}
	out := g.Clone()
	out.data[out.Index(r, c)] = 0
	if alive {
		out.data[out.Index(r, c)] = 1
	}
	return out, nil
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, data: slices.Clone(g.data)}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.rows == o.rows && g.cols == o.cols && slices.Equal(g.data, o.data)
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// String renders the grid as rows of '#' and '.' characters.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.cols+1)*g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.data[g.Index(r, c)] != 0 {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Resized returns a rows×cols grid holding the cells of g that fall inside the
// new extent; cells outside the old extent start dead.
func (g *Grid) Resized(rows, cols int) (*Grid, error) {
	out, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < min(rows, g.rows); r++ {
		copy(out.data[r*cols:r*cols+min(cols, g.cols)], g.data[r*g.cols:])
	}
	return out, nil
}
