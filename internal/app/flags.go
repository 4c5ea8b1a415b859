package app

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"tapestry/pkg/grid"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	HUD     int
	Verbose bool
	Params  Params
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42, HUD: 220, Params: Params{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels, 0 hides it")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log debug output to stderr")
	fs.Var(c.Params, "p", "simulation parameter as key=value, repeatable")
}

// Logger builds the stderr logger for c and installs it for the grid package.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	grid.SetLogger(l)
	return l
}

// Params collects repeated key=value flags for a simulation factory.
type Params map[string]string

func (p Params) String() string {
	parts := make([]string, 0, len(p))
	for _, k := range slices.Sorted(maps.Keys(p)) {
		parts = append(parts, k+"="+p[k])
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (p Params) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("parameter %q: want key=value", v)
	}
	p[key] = value
	return nil
}
