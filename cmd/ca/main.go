//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"conway/internal/app"
	_ "conway/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed := cfg.ResolveSeed()
	sim, err := cfg.Build(seed)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Pacer(), seed)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
