package render

import "image/color"

// Palette holds the colours used to draw a board.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Lines color.Color
}

// DefaultPalette draws dark cells on an off-white board with light grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Dead:  color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		Lines: color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a pixel position to grid coordinates for a board drawn with the
// given cell size. ok is false when the point lies outside a rows×cols board.
func CellAt(x, y, cellSize, rows, cols int) (r, c int, ok bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	r, c = y/cellSize, x/cellSize
	if r >= rows || c >= cols {
		return 0, 0, false
	}
	return r, c, true
}
