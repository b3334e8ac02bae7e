package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Renderer consumes every grid the simulation publishes.
type Renderer interface {
	Render(g *Grid)
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(g *Grid)

// Render calls f(g).
func (f RenderFunc) Render(g *Grid) { f(g) }
