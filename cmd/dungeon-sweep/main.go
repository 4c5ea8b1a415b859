package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"tapestry/internal/sims/dungeon"
	"tapestry/pkg/grid"
)

func main() {
	seeds := flag.Int("seeds", 64, "layouts to generate per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent generators")
	width := flag.Int("w", 64, "board width")
	height := flag.Int("h", 64, "board height")
	leaves := flag.String("min", "6,8,10,12", "comma separated minimum BSP leaf sizes")
	rooms := flag.String("room", "3,4,6", "comma separated minimum room sizes")
	top := flag.Int("top", 5, "results to print")
	verbose := flag.Bool("v", false, "log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	grid.SetLogger(logger)

	leafSizes, err := parseInts(*leaves)
	if err != nil {
		logger.Error("parse -min", "err", err)
		os.Exit(2)
	}
	roomSizes, err := parseInts(*rooms)
	if err != nil {
		logger.Error("parse -room", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	base := dungeon.DefaultConfig()
	base.Width, base.Height = *width, *height
	sets := dungeon.Combinations(leafSizes, roomSizes)
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d seeds)\n", len(sets), *workers, *seeds)

	start := time.Now()
	results, err := dungeon.Sweep(ctx, base, sets, *seeds, *workers)
	if err != nil {
		logger.Error("sweep", "err", err)
		os.Exit(1)
	}

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) coverage=%.3f [%.3f,%.3f] rooms=%.1f depth<=%d params=%s\n",
			i+1, res.MeanCoverage, res.MinCoverage, res.MaxCoverage, res.MeanRooms, res.MaxDepth, res.Params)
	}
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", field, err)
		}
		if v < 1 {
			return nil, fmt.Errorf("%q: must be positive", field)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", list)
	}
	return out, nil
}
