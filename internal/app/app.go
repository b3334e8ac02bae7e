//go:build ebiten

package app

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"life-canvas/internal/core"
	"life-canvas/internal/render"
	"life-canvas/internal/sims/life"
	"life-canvas/internal/ui"
)

// Game adapts a Life engine to the ebiten.Game interface. It is the single
// owner of the engine; ebiten calls Update and Draw from one goroutine, so
// user edits and scheduled steps never interleave.
type Game struct {
	engine  *life.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	cellSize int
	hudWidth int
	lastSize core.Size
}

// New constructs a Game for the provided engine and registers the painter as
// its renderer.
func New(engine *life.Engine, cellSize, hudWidth int) *Game {
	g := &Game{
		engine:   engine,
		painter:  render.NewGridPainter(cellSize, render.DefaultPalette()),
		overlay:  ui.NewOverlay(engine, cellSize),
		hud:      ui.NewHUD(engine, hudWidth),
		cellSize: cellSize,
		hudWidth: hudWidth,
		lastSize: engine.Size(),
	}
	engine.SetRenderer(g.painter)
	return g
}

// WindowSize returns the window dimensions needed for the current board.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleClick()

	g.overlay.Update()
	g.hud.Update(g.boardWidth())

	g.engine.Advance()

	if size := g.engine.Size(); size != g.lastSize {
		g.lastSize = size
		ebiten.SetWindowSize(g.WindowSize())
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Running() {
			g.engine.Pause()
		} else {
			g.engine.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.engine.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.engine.Pause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.engine.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.reset(core.FillDead, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset(core.FillRandom, true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.reset(core.FillNoise, true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		next := core.Clamped
		if g.engine.Config().Boundary == core.Clamped {
			next = core.Toroidal
		}
		g.engine.SetBoundary(next)
		log.Printf("boundary policy: %s", next)
	}
}

func (g *Game) reset(fill core.FillPolicy, reseed bool) {
	if reseed {
		g.engine.Reseed(time.Now().UnixNano())
	}
	if err := g.engine.Reset(fill); err != nil {
		log.Printf("reset rejected: %v", err)
	}
}

func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	grid := g.engine.Grid()
	r, c, ok := render.CellAt(mx, my, g.cellSize, grid.Rows(), grid.Cols())
	if !ok {
		return
	}
	if err := g.engine.ToggleCell(r, c); err != nil {
		log.Printf("toggle rejected: %v", err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.overlay.Draw(screen)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.boardWidth(), h)
}

func (g *Game) boardWidth() int {
	return g.engine.Size().W * g.cellSize
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	h := max(s.H*g.cellSize, g.hud.MinHeight())
	return s.W*g.cellSize + g.hudWidth, h
}
