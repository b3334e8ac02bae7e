package life

import "life-canvas/internal/core"

// Step computes the next generation of g under Conway's B3/S23 rule. Every
// neighbour count is read from g; the result is a fresh grid and g is left
// unchanged.
func Step(g *core.Grid, b core.Boundary) *core.Grid {
	next, _ := core.Create(g.Rows(), g.Cols(), core.FillDead, 0)
	src := g.Cells()
	dst := next.Cells()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			idx := g.Index(r, c)
			dst[idx] = Rule(src[idx] != 0, core.Neighbors(g, r, c, b))
		}
	}
	return next
}

// Rule returns the next state (1 alive, 0 dead) of a cell with n live neighbours.
func Rule(alive bool, n int) uint8 {
	switch {
	case alive && (n < 2 || n > 3):
		return 0
	case alive:
		return 1
	case n == 3:
		return 1
	default:
		return 0
	}
}
