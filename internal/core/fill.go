package core

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
)

// FillPolicy selects how a freshly created grid is populated.
type FillPolicy int

const (
	// FillDead leaves every cell dead.
	FillDead FillPolicy = iota
	// FillRandom makes each cell alive independently with RandomDensity.
	FillRandom
	// FillNoise thresholds 2D Perlin noise, producing clustered regions.
	FillNoise
)

// RandomDensity is the alive probability used by FillRandom.
const RandomDensity = 0.5

const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseFrequency = 0.18
)

var fillNames = map[FillPolicy]string{
	FillDead:   "dead",
	FillRandom: "random",
	FillNoise:  "noise",
}

func (f FillPolicy) String() string {
	if name, ok := fillNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FillPolicy(%d)", int(f))
}

// ParseFillPolicy maps a name such as "random" to its FillPolicy.
func ParseFillPolicy(s string) (FillPolicy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for policy, name := range fillNames {
		if name == key {
			return policy, nil
		}
	}
	return FillDead, fmt.Errorf("unknown fill policy %q", s)
}

// Create allocates a rows×cols grid populated according to fill. The seed
// makes FillRandom and FillNoise deterministic.
func Create(rows, cols int, fill FillPolicy, seed int64) (*Grid, error) {
	g, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	switch fill {
	case FillDead:
	case FillRandom:
		FillBinary(NewRNG(seed), g.data, RandomDensity)
	case FillNoise:
		fillNoise(g, seed)
	default:
		return nil, fmt.Errorf("unknown fill policy %v", fill)
	}
	return g, nil
}

func fillNoise(g *Grid, seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if p.Noise2D(float64(c)*noiseFrequency, float64(r)*noiseFrequency) > 0 {
				g.data[g.Index(r, c)] = 1
			}
		}
	}
}
