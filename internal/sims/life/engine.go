package life

import (
	"fmt"
	"time"

	"life-canvas/internal/core"
)

// SimulationState is the mutable state of a session. Grid is replaced
// wholesale on every change and never mutated in place.
type SimulationState struct {
	Grid         *core.Grid
	Running      bool
	TickInterval time.Duration
}

// Engine drives a Life session: it owns the current grid, the run/pause state
// machine and the cancellable tick schedule. It is not safe for concurrent use;
// the host must call every method from a single loop.
type Engine struct {
	cfg        Config
	state      SimulationState
	tick       *core.TickHandle
	generation int

	renderer core.Renderer
	clock    func() time.Time
}

// NewEngine builds an engine from cfg and populates the first grid.
func NewEngine(cfg Config) (*Engine, error) {
	interval, err := core.Interval(cfg.CyclesPerSecond)
	if err != nil {
		return nil, err
	}
	grid, err := core.Create(cfg.Rows, cfg.Cols, cfg.Fill, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:   cfg,
		state: SimulationState{Grid: grid, TickInterval: interval},
		clock: time.Now,
	}, nil
}

// SetRenderer installs the collaborator notified after every change and
// immediately publishes the current grid to it.
func (e *Engine) SetRenderer(r core.Renderer) {
	e.renderer = r
	e.publish()
}

// SetClock replaces the time source used for scheduling.
func (e *Engine) SetClock(clock func() time.Time) {
	if clock == nil {
		clock = time.Now
	}
	e.clock = clock
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// State returns a copy of the current simulation state.
func (e *Engine) State() SimulationState { return e.state }

// Grid returns the current generation.
func (e *Engine) Grid() *core.Grid { return e.state.Grid }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.state.Grid.Size() }

// Running reports whether the engine is in the RUNNING state.
func (e *Engine) Running() bool { return e.state.Running }

// Generation counts steps since the last reset or resize.
func (e *Engine) Generation() int { return e.generation }

// Config returns the live configuration.
func (e *Engine) Config() Config { return e.cfg }

// Start moves the engine to RUNNING. Calling it while running does nothing.
func (e *Engine) Start() {
	if e.state.Running {
		return
	}
	e.state.Running = true
	e.tick = core.NewTickHandle(e.state.TickInterval, e.clock())
}

// Pause moves the engine to STOPPED and cancels any pending tick. Calling it
// while stopped does nothing.
func (e *Engine) Pause() {
	if !e.state.Running {
		return
	}
	e.state.Running = false
	if e.tick != nil {
		e.tick.Cancel()
		e.tick = nil
	}
}

// Advance polls the tick schedule and performs one step when it is due. It
// reports whether a step happened.
func (e *Engine) Advance() bool {
	if !e.state.Running || e.tick == nil {
		return false
	}
	if !e.tick.Due(e.clock()) {
		return false
	}
	e.step()
	return true
}

// StepOnce advances exactly one generation regardless of the run state.
func (e *Engine) StepOnce() {
	e.step()
}

func (e *Engine) step() {
	e.state.Grid = Step(e.state.Grid, e.cfg.Boundary)
	e.generation++
	e.publish()
}

// ToggleCell flips cell (r, c).
func (e *Engine) ToggleCell(r, c int) error {
	next, err := e.state.Grid.Toggle(r, c)
	if err != nil {
		return err
	}
	e.state.Grid = next
	e.publish()
	return nil
}

// SetSpeed changes the number of generations per second. A wait already in
// flight completes at its old length.
func (e *Engine) SetSpeed(cps int) error {
	interval, err := core.Interval(cps)
	if err != nil {
		return err
	}
	e.cfg.CyclesPerSecond = cps
	e.state.TickInterval = interval
	if e.tick != nil {
		e.tick.SetInterval(interval)
	}
	return nil
}

// SetBoundary switches the neighbour policy used by subsequent steps.
func (e *Engine) SetBoundary(b core.Boundary) {
	e.cfg.Boundary = b
}

// Resize replaces the grid with a rows×cols one keeping the overlapping
// cells. A running engine is paused for the swap and resumed with a fresh
// schedule, so no pending tick observes the old dimensions.
func (e *Engine) Resize(rows, cols int) error {
	next, err := e.state.Grid.Resized(rows, cols)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	e.replace(next)
	e.cfg.Rows, e.cfg.Cols = rows, cols
	return nil
}

// Reseed sets the seed used by subsequent random or noise resets.
func (e *Engine) Reseed(seed int64) {
	e.cfg.Seed = seed
}

// Reset repopulates the grid at the current dimensions using fill.
func (e *Engine) Reset(fill core.FillPolicy) error {
	next, err := core.Create(e.cfg.Rows, e.cfg.Cols, fill, e.cfg.Seed)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	e.cfg.Fill = fill
	e.replace(next)
	return nil
}

func (e *Engine) replace(g *core.Grid) {
	wasRunning := e.state.Running
	e.Pause()
	e.state.Grid = g
	e.generation = 0
	e.publish()
	if wasRunning {
		e.Start()
	}
}

func (e *Engine) publish() {
	if e.renderer != nil {
		e.renderer.Render(e.state.Grid)
	}
}
