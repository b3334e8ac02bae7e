package life

import "life-canvas/internal/core"

// Fate classifies how a board ended up after a census run.
type Fate string

const (
	FateExtinct    Fate = "extinct"
	FateStill      Fate = "still life"
	FateOscillator Fate = "period 2"
	FateActive     Fate = "active"
)

// CensusResult summarises a headless run of a single board.
type CensusResult struct {
	Seed        int64
	Generations int
	Population  int
	Peak        int
	Fate        Fate
}

// Census steps g until it dies out, becomes a still life or a period-2
// oscillator, or maxGenerations is reached.
func Census(g *core.Grid, b core.Boundary, maxGenerations int) CensusResult {
	res := CensusResult{Population: g.Population(), Peak: g.Population()}
	var prev *core.Grid
	cur := g
	for res.Generations < maxGenerations {
		if cur.Population() == 0 {
			res.Fate = FateExtinct
			return res
		}
		next := Step(cur, b)
		res.Generations++
		res.Population = next.Population()
		res.Peak = max(res.Peak, res.Population)
		if next.Equal(cur) {
			res.Fate = FateStill
			return res
		}
		if prev != nil && next.Equal(prev) {
			res.Fate = FateOscillator
			return res
		}
		prev, cur = cur, next
	}
	res.Fate = FateActive
	if cur.Population() == 0 {
		res.Fate = FateExtinct
	}
	return res
}
