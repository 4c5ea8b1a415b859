//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tapestry/internal/app"
	"tapestry/internal/core"
	_ "tapestry/internal/sims/briansbrain"
	_ "tapestry/internal/sims/dungeon"
	_ "tapestry/internal/sims/elementary"
	_ "tapestry/internal/sims/life"
	_ "tapestry/internal/sims/outline"
	_ "tapestry/internal/sims/ring"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	logger := cfg.Logger()

	sim, err := core.New(cfg.Sim, cfg.Params)
	if err != nil {
		logger.Error("create simulation", "err", err, "available", core.Names())
		os.Exit(1)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("tapestry: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUD, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
