package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"tapestry/internal/app"
	"tapestry/internal/core"
	_ "tapestry/internal/sims/briansbrain"
	_ "tapestry/internal/sims/dungeon"
	_ "tapestry/internal/sims/elementary"
	_ "tapestry/internal/sims/life"
	_ "tapestry/internal/sims/outline"
	_ "tapestry/internal/sims/ring"
	"tapestry/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 10
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	logger := cfg.Logger()

	sim, err := core.New(cfg.Sim, cfg.Params)
	if err != nil {
		logger.Error("create simulation", "err", err, "available", core.Names())
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("open terminal", "err", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("init terminal", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	viewer := term.NewViewer(screen, sim, cfg.TPS, cfg.Seed)
	viewer.Reset(cfg.Seed)
	err = viewer.Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
