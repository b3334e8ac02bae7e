package core

import (
	"fmt"
	"strings"
)

// Boundary selects how neighbour lookups treat the grid edges.
type Boundary int

const (
	// Toroidal wraps coordinates modulo the grid dimensions.
	Toroidal Boundary = iota
	// Clamped treats positions outside the grid as dead.
	Clamped
)

func (b Boundary) String() string {
	switch b {
	case Toroidal:
		return "toroidal"
	case Clamped:
		return "clamped"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// ParseBoundary maps "toroidal" or "clamped" to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toroidal", "wrap", "torus":
		return Toroidal, nil
	case "clamped", "bounded":
		return Clamped, nil
	}
	return Toroidal, fmt.Errorf("unknown boundary %q", s)
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.rows + g.rows) % g.rows
	c = (c%g.cols + g.cols) % g.cols
	return r, c
}

// CountNeighbors sums the live cells among the eight positions around (r, c)
// under the given boundary policy.
func CountNeighbors(g *Grid, r, c int, b Boundary) (int, error) {
	if err := g.check(r, c); err != nil {
		return 0, err
	}
	return Neighbors(g, r, c, b), nil
}

// Neighbors is CountNeighbors without the bounds check. (r, c) must be inside g.
func Neighbors(g *Grid, r, c int, b Boundary) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if b == Clamped {
				if !g.Contains(nr, nc) {
					continue
				}
			} else {
				nr, nc = g.Wrap(nr, nc)
			}
			n += int(g.data[nr*g.cols+nc])
		}
	}
	return n
}
