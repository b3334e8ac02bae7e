package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{R: 200, G: 210, B: 220, A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		10, 20, 30, 255,
		200, 210, 220, 255,
		10, 20, 30, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels %v, want %v", buf, want)
	}
}

func TestCellAt(t *testing.T) {
	r, c, ok := CellAt(45, 19, 20, 10, 10)
	if !ok || r != 0 || c != 2 {
		t.Fatalf("CellAt(45,19) = %d,%d,%v", r, c, ok)
	}
	if _, _, ok := CellAt(200, 5, 20, 10, 10); ok {
		t.Fatal("point right of the board mapped to a cell")
	}
	if _, _, ok := CellAt(-1, 5, 20, 10, 10); ok {
		t.Fatal("negative point mapped to a cell")
	}
	if _, _, ok := CellAt(5, 5, 0, 10, 10); ok {
		t.Fatal("zero cell size mapped to a cell")
	}
}
