package elementary

import (
	"tapestry/internal/core"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
	Random bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.MapInt(cfg, "w", c.Width, 1)
	c.Height = core.MapInt(cfg, "h", c.Height, 1)
	if rule := core.MapInt(cfg, "rule", -1, 0); rule >= 0 && rule <= 255 {
		c.Rule = uint8(rule)
	}
	c.Random = core.MapBool(cfg, "random", c.Random)
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically:
// row 0 holds the newest generation and older rows scroll downwards.
type Elementary struct {
	cfg   Config
	cells *grid.Grid[uint8]
	top   []uint8
}

// New creates an automaton for cfg.
func New(cfg Config) (*Elementary, error) {
	cells, err := core.NewCells(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Elementary{cfg: cfg, cells: cells, top: make([]uint8, cfg.Width)}, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.cfg.Width, H: e.cfg.Height} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() *grid.Grid[uint8] { return e.cells }

// Reset clears the grid and seeds the top row, either with a single active
// cell in the centre or randomly when Random is set.
func (e *Elementary) Reset(seed int64) {
	e.cells.Fill(0)
	if e.cfg.Random {
		rng := core.NewRNG(seed)
		for x := range e.cfg.Width {
			if rng.Bool() {
				e.cells.Set(geom.C(int32(x), 0), 1)
			}
		}
		return
	}
	e.cells.Set(geom.C(int32(e.cfg.Width/2), 0), 1)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w := int32(e.cfg.Width)
	for x := range w {
		e.top[x], _ = e.cells.Get(geom.C(x, 0))
	}
	for y := int32(e.cfg.Height) - 1; y > 0; y-- {
		for x := range w {
			e.cells.Copy(geom.C(x, y-1), geom.C(x, y))
		}
	}
	for x := range w {
		left := e.top[(x-1+w)%w]
		center := e.top[x]
		right := e.top[(x+1)%w]
		idx := (left << 2) | (center << 1) | right
		e.cells.Set(geom.C(x, 0), (e.cfg.Rule>>idx)&1)
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
