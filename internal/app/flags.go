package app

import (
	"flag"
	"fmt"

	"life-canvas/internal/core"
	"life-canvas/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	CellSize int
	Speed    int
	Boundary string
	Fill     string
	Seed     int64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Rows:     def.Rows,
		Cols:     def.Cols,
		CellSize: 20,
		Speed:    def.CyclesPerSecond,
		Boundary: def.Boundary.String(),
		Fill:     def.Fill.String(),
		Seed:     def.Seed,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations per second")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge policy: toroidal or clamped")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill: dead, random or noise")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random and noise fills")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// LifeConfig validates the flags and converts them into an engine
// configuration. Speeds below the minimum are clamped.
func (c *Config) LifeConfig() (life.Config, error) {
	if c.Rows <= 0 || c.Cols <= 0 {
		return life.Config{}, fmt.Errorf("%w: %dx%d", core.ErrInvalidDimension, c.Rows, c.Cols)
	}
	if c.CellSize <= 0 {
		return life.Config{}, fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	boundary, err := core.ParseBoundary(c.Boundary)
	if err != nil {
		return life.Config{}, err
	}
	fill, err := core.ParseFillPolicy(c.Fill)
	if err != nil {
		return life.Config{}, err
	}
	return life.Config{
		Rows:            c.Rows,
		Cols:            c.Cols,
		CyclesPerSecond: core.ClampRate(c.Speed),
		Boundary:        boundary,
		Fill:            fill,
		Seed:            c.Seed,
	}, nil
}
