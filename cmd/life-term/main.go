package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conway/internal/app"
	_ "conway/internal/sims/life"
	"conway/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	cols, rows := screen.Size()
	fit := term.FitSize(cols, rows)
	if !set["width"] {
		cfg.Width = fit.W
	}
	if !set["height"] {
		cfg.Height = fit.H
	}

	seed := cfg.ResolveSeed()
	sim, err := cfg.Build(seed)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	loop := term.NewLoop(sim, cfg.Pacer(), screen, time.Second/time.Duration(cfg.TPS), seed)
	err = loop.Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
