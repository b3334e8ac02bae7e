package life

import (
	"testing"

	"life-canvas/internal/core"
)

func TestCensusFates(t *testing.T) {
	block := gridWith(t, 6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
	if res := Census(block, core.Toroidal, 10); res.Fate != FateStill || res.Generations != 1 {
		t.Fatalf("block census %+v", res)
	}

	blinker := gridWith(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	if res := Census(blinker, core.Toroidal, 10); res.Fate != FateOscillator || res.Generations != 2 {
		t.Fatalf("blinker census %+v", res)
	}

	single := gridWith(t, 5, 5, [2]int{2, 2})
	res := Census(single, core.Clamped, 10)
	if res.Fate != FateExtinct || res.Population != 0 || res.Peak != 1 {
		t.Fatalf("single cell census %+v", res)
	}

	glider := gridWith(t, 12, 12, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	res = Census(glider, core.Toroidal, 8)
	if res.Fate != FateActive || res.Generations != 8 || res.Population != 5 {
		t.Fatalf("glider census %+v", res)
	}
}
