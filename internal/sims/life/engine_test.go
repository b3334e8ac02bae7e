package life

import (
	"errors"
	"testing"
	"time"

	"life-canvas/internal/core"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestEngine(t *testing.T, cfg Config) (*Engine, *fakeClock, *[]*core.Grid) {
	t.Helper()
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	e.SetClock(clock.Now)
	var published []*core.Grid
	e.SetRenderer(core.RenderFunc(func(g *core.Grid) { published = append(published, g) }))
	published = published[:0]
	return e, clock, &published
}

func blinkerConfig() Config {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	cfg.Fill = core.FillDead
	cfg.CyclesPerSecond = 5
	return cfg
}

func TestNewEngineValidates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	if _, err := NewEngine(cfg); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
	cfg = DefaultConfig()
	cfg.CyclesPerSecond = 0
	if _, err := NewEngine(cfg); !errors.Is(err, core.ErrInvalidRate) {
		t.Fatalf("err = %v, want ErrInvalidRate", err)
	}
}

func TestStartPauseBeforeTickRunsNothing(t *testing.T) {
	e, clock, published := newTestEngine(t, DefaultConfig())
	before := e.Grid()

	e.Start()
	e.Pause()
	clock.Advance(10 * time.Second)
	for i := 0; i < 5; i++ {
		if e.Advance() {
			t.Fatal("paused engine stepped")
		}
	}
	if e.Generation() != 0 || e.Grid() != before || len(*published) != 0 {
		t.Fatalf("generation=%d published=%d, want no steps", e.Generation(), len(*published))
	}
}

func TestRunningEngineStepsOnInterval(t *testing.T) {
	e, clock, published := newTestEngine(t, blinkerConfig())
	if e.State().TickInterval != 200*time.Millisecond {
		t.Fatalf("interval %v, want 200ms", e.State().TickInterval)
	}

	e.Start()
	clock.Advance(100 * time.Millisecond)
	if e.Advance() {
		t.Fatal("stepped before the interval")
	}
	clock.Advance(100 * time.Millisecond)
	if !e.Advance() {
		t.Fatal("did not step after one interval")
	}
	if e.Generation() != 1 || len(*published) != 1 || (*published)[0] != e.Grid() {
		t.Fatalf("generation=%d published=%d", e.Generation(), len(*published))
	}
}

func TestStartIsIdempotent(t *testing.T) {
	e, clock, _ := newTestEngine(t, blinkerConfig())
	e.Start()
	clock.Advance(150 * time.Millisecond)
	e.Start()
	clock.Advance(50 * time.Millisecond)
	if !e.Advance() {
		t.Fatal("second Start reset the schedule")
	}
	if e.Advance() {
		t.Fatal("a second tick stream fired")
	}
	if e.Generation() != 1 {
		t.Fatalf("generation %d, want 1", e.Generation())
	}
}

func TestPauseCancelsPendingTick(t *testing.T) {
	e, clock, _ := newTestEngine(t, blinkerConfig())
	e.Start()
	clock.Advance(199 * time.Millisecond)
	e.Advance()
	e.Pause()
	e.Pause()
	clock.Advance(time.Second)
	if e.Advance() || e.Running() {
		t.Fatal("tick fired after pause")
	}

	e.Start()
	clock.Advance(100 * time.Millisecond)
	if e.Advance() {
		t.Fatal("restart reused the cancelled schedule")
	}
}

func TestSetSpeed(t *testing.T) {
	e, clock, _ := newTestEngine(t, blinkerConfig())
	if err := e.SetSpeed(0); !errors.Is(err, core.ErrInvalidRate) {
		t.Fatalf("SetSpeed(0) err = %v", err)
	}
	if err := e.SetSpeed(-2); !errors.Is(err, core.ErrInvalidRate) {
		t.Fatalf("SetSpeed(-2) err = %v", err)
	}
	if e.State().TickInterval != 200*time.Millisecond {
		t.Fatal("rejected speed changed the interval")
	}

	e.Start()
	if err := e.SetSpeed(1); err != nil {
		t.Fatalf("SetSpeed(1): %v", err)
	}
	clock.Advance(200 * time.Millisecond)
	if !e.Advance() {
		t.Fatal("speed change stretched the in-flight wait")
	}
	clock.Advance(500 * time.Millisecond)
	if e.Advance() {
		t.Fatal("new interval not applied")
	}
	clock.Advance(500 * time.Millisecond)
	if !e.Advance() {
		t.Fatal("did not step after the new interval")
	}
}

func TestToggleCell(t *testing.T) {
	e, _, published := newTestEngine(t, blinkerConfig())
	orig := e.Grid()
	if err := e.ToggleCell(1, 1); err != nil {
		t.Fatalf("ToggleCell: %v", err)
	}
	if alive, _ := e.Grid().Get(1, 1); !alive {
		t.Fatal("cell not toggled")
	}
	if len(*published) != 1 {
		t.Fatalf("published %d grids, want 1", len(*published))
	}
	if err := e.ToggleCell(1, 1); err != nil {
		t.Fatalf("ToggleCell: %v", err)
	}
	if !e.Grid().Equal(orig) {
		t.Fatal("double toggle did not restore the grid")
	}
	if err := e.ToggleCell(5, 0); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	if len(*published) != 2 {
		t.Fatal("rejected toggle published a grid")
	}
}

func TestResizeWhileRunning(t *testing.T) {
	e, clock, _ := newTestEngine(t, blinkerConfig())
	e.ToggleCell(1, 2)
	e.ToggleCell(2, 2)
	e.ToggleCell(3, 2)

	e.Start()
	clock.Advance(150 * time.Millisecond)
	e.Advance()
	if err := e.Resize(8, 9); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if !e.Running() {
		t.Fatal("resize left the engine paused")
	}
	if e.Size() != (core.Size{W: 9, H: 8}) {
		t.Fatalf("size %+v", e.Size())
	}
	if e.Generation() != 0 {
		t.Fatal("generation not reset by resize")
	}

	clock.Advance(150 * time.Millisecond)
	if e.Advance() {
		t.Fatal("tick scheduled before the resize fired")
	}
	clock.Advance(50 * time.Millisecond)
	if !e.Advance() {
		t.Fatal("resumed schedule did not fire")
	}
	if e.Grid().Rows() != 8 || e.Grid().Cols() != 9 {
		t.Fatal("step used stale dimensions")
	}
	if e.Grid().Population() != 3 {
		t.Fatalf("blinker population %d after resize+step", e.Grid().Population())
	}
}

func TestResizeRejected(t *testing.T) {
	e, _, published := newTestEngine(t, blinkerConfig())
	before := e.Grid()
	e.Start()
	if err := e.Resize(0, 4); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
	if e.Grid() != before || !e.Running() || len(*published) != 0 {
		t.Fatal("rejected resize changed state")
	}
}

func TestResetAndReseed(t *testing.T) {
	e, _, _ := newTestEngine(t, blinkerConfig())
	e.Reseed(3)
	if err := e.Reset(core.FillRandom); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	want, _ := core.Create(5, 5, core.FillRandom, 3)
	if !e.Grid().Equal(want) {
		t.Fatal("random reset ignored the seed")
	}
	e.StepOnce()
	if err := e.Reset(core.FillDead); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if e.Grid().Population() != 0 || e.Generation() != 0 {
		t.Fatal("dead reset left cells or generations")
	}
}

func TestHUDParameters(t *testing.T) {
	e, _, _ := newTestEngine(t, blinkerConfig())
	if !e.SetIntParameter("speed", 10) || e.State().TickInterval != 100*time.Millisecond {
		t.Fatal("speed parameter not applied")
	}
	if e.SetIntParameter("speed", 0) {
		t.Fatal("zero speed accepted")
	}
	if !e.SetIntParameter("rows", 7) || e.Grid().Rows() != 7 {
		t.Fatal("rows parameter not applied")
	}
	if !e.SetIntParameter("cols", 3) || e.Grid().Cols() != 3 {
		t.Fatal("cols parameter not applied")
	}
	if e.SetIntParameter("bogus", 1) {
		t.Fatal("unknown key accepted")
	}
	p, ok := e.Parameters().Lookup("status")
	if !ok || p.Value != "paused" {
		t.Fatalf("status = %+v", p)
	}
	e.Start()
	if p, _ := e.Parameters().Lookup("status"); p.Value != "running" {
		t.Fatalf("status = %q, want running", p.Value)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"rows":     "30",
		"cols":     "x",
		"speed":    "-5",
		"boundary": "clamped",
		"fill":     "noise",
		"seed":     "9",
	})
	if c.Rows != 30 || c.Cols != DefaultConfig().Cols {
		t.Fatalf("dimensions %dx%d", c.Rows, c.Cols)
	}
	if c.CyclesPerSecond != core.MinCyclesPerSecond {
		t.Fatalf("speed %d not clamped", c.CyclesPerSecond)
	}
	if c.Boundary != core.Clamped || c.Fill != core.FillNoise || c.Seed != 9 {
		t.Fatalf("config %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map did not yield defaults")
	}
}
