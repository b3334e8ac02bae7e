//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"life-canvas/internal/core"
)

// GridPainter keeps one pixel per cell in an RGBA image and scales it up by
// the cell size when drawing. It implements core.Renderer: every published
// grid is converted to pixels once and uploaded on the next Draw.
type GridPainter struct {
	rows, cols int
	cellSize   int
	palette    Palette

	img   *ebiten.Image
	buf   []byte
	dirty bool
}

// NewGridPainter allocates a painter drawing cellSize-pixel cells.
func NewGridPainter(cellSize int, palette Palette) *GridPainter {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &GridPainter{cellSize: cellSize, palette: palette}
}

// Render converts g into the pixel buffer, reallocating on a size change.
func (gp *GridPainter) Render(g *core.Grid) {
	if g.Rows() != gp.rows || g.Cols() != gp.cols || gp.img == nil {
		gp.rows, gp.cols = g.Rows(), g.Cols()
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.img = ebiten.NewImage(gp.cols, gp.rows)
		gp.buf = make([]byte, 4*gp.rows*gp.cols)
	}
	fillBinaryRGBA(gp.buf, g.Cells(), gp.palette.Alive, gp.palette.Dead)
	gp.dirty = true
}

// Draw paints the last rendered grid and its cell outlines onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image) {
	if gp.img == nil {
		return
	}
	if gp.dirty {
		gp.img.WritePixels(gp.buf)
		gp.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.cellSize), float64(gp.cellSize))
	dst.DrawImage(gp.img, op)

	if gp.cellSize < 4 {
		return
	}
	w := float32(gp.cols * gp.cellSize)
	h := float32(gp.rows * gp.cellSize)
	for r := 0; r <= gp.rows; r++ {
		y := float32(r * gp.cellSize)
		vector.StrokeLine(dst, 0, y, w, y, 1, gp.palette.Lines, false)
	}
	for c := 0; c <= gp.cols; c++ {
		x := float32(c * gp.cellSize)
		vector.StrokeLine(dst, x, 0, x, h, 1, gp.palette.Lines, false)
	}
}

// Bounds returns the pixel size of the board.
func (gp *GridPainter) Bounds() (int, int) {
	return gp.cols * gp.cellSize, gp.rows * gp.cellSize
}

// CellSize returns the edge length of one cell in pixels.
func (gp *GridPainter) CellSize() int { return gp.cellSize }
