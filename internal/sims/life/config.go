package life

import (
	"strconv"

	"life-canvas/internal/core"
)

// Config holds the startup parameters of a Life session.
type Config struct {
	Rows int
	Cols int

	// CyclesPerSecond is the number of generations computed per second while
	// running. Values below core.MinCyclesPerSecond are clamped.
	CyclesPerSecond int

	Boundary core.Boundary
	Fill     core.FillPolicy
	Seed     int64
}

// DefaultConfig returns a 20×20 toroidal board advancing 5 generations per
// second, randomly filled from seed 42.
func DefaultConfig() Config {
	return Config{
		Rows:            20,
		Cols:            20,
		CyclesPerSecond: 5,
		Boundary:        core.Toroidal,
		Fill:            core.FillRandom,
		Seed:            42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.CyclesPerSecond = core.ClampRate(parsed)
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := core.ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := core.ParseFillPolicy(v); err == nil {
			c.Fill = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
