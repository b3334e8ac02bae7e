//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"life-canvas/internal/core"
	"life-canvas/internal/render"
)

type gridProvider interface {
	Grid() *core.Grid
}

// Overlay outlines the cell under the pointer so clicks land where expected.
type Overlay struct {
	sim      gridProvider
	cellSize int
	show     bool

	hoverRow, hoverCol int
	hovering           bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim gridProvider, cellSize int) *Overlay {
	return &Overlay{sim: sim, cellSize: cellSize, show: true}
}

// Update tracks the hovered cell. H toggles the outline.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
	g := o.sim.Grid()
	mx, my := ebiten.CursorPosition()
	o.hoverRow, o.hoverCol, o.hovering = render.CellAt(mx, my, o.cellSize, g.Rows(), g.Cols())
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.hovering || o.cellSize < 4 {
		return
	}
	x := float32(o.hoverCol * o.cellSize)
	y := float32(o.hoverRow * o.cellSize)
	size := float32(o.cellSize)
	vector.StrokeRect(screen, x+1, y+1, size-2, size-2, 2, color.RGBA{R: 64, G: 164, B: 223, A: 255}, false)
}
