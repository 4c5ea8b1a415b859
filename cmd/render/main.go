// Command render steps a simulation headlessly and prints the result as
// text, braille or PNG.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"tapestry/internal/app"
	"tapestry/internal/core"
	"tapestry/internal/render"
	_ "tapestry/internal/sims/briansbrain"
	_ "tapestry/internal/sims/dungeon"
	_ "tapestry/internal/sims/elementary"
	_ "tapestry/internal/sims/life"
	_ "tapestry/internal/sims/outline"
	_ "tapestry/internal/sims/ring"
	"tapestry/pkg/braille"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
)

var errFormat = errors.New("unknown format")

type options struct {
	steps  int
	every  int
	format string
	list   bool
}

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 1
	cfg.Bind(flag.CommandLine)
	var opts options
	flag.IntVar(&opts.steps, "steps", 0, "steps to run before the final frame")
	flag.IntVar(&opts.every, "every", 0, "also print a frame every n steps")
	flag.StringVar(&opts.format, "format", "text", "output format: text, braille or png")
	flag.BoolVar(&opts.list, "list", false, "list simulations and exit")
	flag.Parse()
	logger := cfg.Logger()

	if opts.list {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
		return
	}

	out := bufio.NewWriter(os.Stdout)
	if err := run(out, cfg, opts, logger); err != nil {
		logger.Error("render", "sim", cfg.Sim, "err", err)
		os.Exit(1)
	}
	if err := out.Flush(); err != nil {
		logger.Error("flush", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *app.Config, opts options, logger *slog.Logger) error {
	sim, err := core.New(cfg.Sim, cfg.Params)
	if err != nil {
		return err
	}
	sim.Reset(cfg.Seed)
	logger.Debug("render: start", "sim", sim.Name(), "size", sim.Size(), "steps", opts.steps)

	for i := 1; i <= opts.steps; i++ {
		sim.Step()
		if opts.every > 0 && i%opts.every == 0 && i != opts.steps {
			if err := frame(w, sim, cfg, opts.format); err != nil {
				return err
			}
		}
	}
	return frame(w, sim, cfg, opts.format)
}

func frame(w io.Writer, sim core.Sim, cfg *app.Config, format string) error {
	switch format {
	case "text":
		if err := grid.WriteText(w, sim.Cells(), func(state uint8) rune { return core.Glyph(sim, state) }); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	case "braille":
		bits, err := grid.WithGenerator(sim.Cells().Bounds(), func(c geom.Coord) bool {
			state, _ := sim.Cells().Get(c)
			return state != 0
		})
		if err != nil {
			return err
		}
		text, err := braille.String(bits)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return err
	case "png":
		return png.Encode(w, render.Image(sim.Cells(), render.PaletteFor(sim), cfg.Scale))
	}
	return fmt.Errorf("%w %q", errFormat, format)
}
