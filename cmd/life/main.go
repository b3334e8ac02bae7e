//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"life-canvas/internal/app"
	"life-canvas/internal/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lifeCfg, err := cfg.LifeConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	engine, err := life.NewEngine(lifeCfg)
	if err != nil {
		log.Fatalf("create engine: %v", err)
	}

	game := app.New(engine, cfg.CellSize, cfg.HUDWidth)

	ebiten.SetWindowTitle("life-canvas — Game of Life")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
