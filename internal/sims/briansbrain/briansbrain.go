package briansbrain

import (
	"image/color"

	"tapestry/internal/core"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
	"tapestry/pkg/pattern"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Density: 0.125}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.MapInt(cfg, "w", c.Width, 1)
	c.Height = core.MapInt(cfg, "h", c.Height, 1)
	c.Density = core.MapFloat(cfg, "density", c.Density, 0, 1)
	return c
}

// Brain implements Brian's Brain cellular automaton on a torus.
type Brain struct {
	cfg Config
	cur *grid.Grid[uint8]
	nxt *grid.Grid[uint8]
}

// New creates a Brain simulation for cfg.
func New(cfg Config) (*Brain, error) {
	cur, err := core.NewCells(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Brain{cfg: cfg, cur: cur, nxt: cur.Clone()}, nil
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.cfg.Width, H: b.cfg.Height} }

// Cells exposes the current state buffer.
func (b *Brain) Cells() *grid.Grid[uint8] { return b.cur }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed)
	for _, v := range b.cur.AllMut() {
		*v = stateDead
		if rng.Chance(b.cfg.Density) {
			*v = stateOn
		}
	}
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	for c, state := range b.cur.All() {
		next := uint8(stateDead)
		switch state {
		case stateOn:
			next = stateDying
		case stateDying:
		default:
			if b.firingNeighbors(c) == 2 {
				next = stateOn
			}
		}
		b.nxt.Set(c, next)
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func (b *Brain) firingNeighbors(c geom.Coord) int {
	n := 0
	for nb := range pattern.Moore(c) {
		if v, _ := b.cur.Get(b.cur.Wrap(nb)); v == stateOn {
			n++
		}
	}
	return n
}

// Glyph maps states to text.
func (b *Brain) Glyph(state uint8) rune {
	switch state {
	case stateOn:
		return '#'
	case stateDying:
		return '+'
	}
	return ' '
}

// Palette colours dead, firing and dying cells.
func (b *Brain) Palette() []color.RGBA {
	return []color.RGBA{
		{A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 40, G: 90, B: 220, A: 255},
	}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
