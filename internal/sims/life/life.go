package life

import (
	"iter"

	"tapestry/internal/core"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
	"tapestry/pkg/pattern"
)

const (
	stateDead  = 0
	stateAlive = 1
)

// Config holds parameters for Conway's Game of Life.
type Config struct {
	Width   int
	Height  int
	Density float64
	Wrap    bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Density: 0.3}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.MapInt(cfg, "w", c.Width, 1)
	c.Height = core.MapInt(cfg, "h", c.Height, 1)
	c.Density = core.MapFloat(cfg, "density", c.Density, 0, 1)
	c.Wrap = core.MapBool(cfg, "wrap", c.Wrap)
	return c
}

// Life implements Conway's Game of Life. Cells past the edge count as dead
// unless Wrap is set, in which case the board is a torus.
type Life struct {
	cfg Config
	cur *grid.Grid[uint8]
	nxt *grid.Grid[uint8]
	gen int
}

// New returns a Life simulation for cfg.
func New(cfg Config) (*Life, error) {
	cur, err := core.NewCells(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, cur: cur, nxt: cur.Clone()}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Cells exposes the current grid values.
func (l *Life) Cells() *grid.Grid[uint8] { return l.cur }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	for _, v := range l.cur.AllMut() {
		*v = stateDead
		if rng.Chance(l.cfg.Density) {
			*v = stateAlive
		}
	}
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	for c, state := range l.cur.All() {
		l.nxt.Set(c, nextState(state, l.liveNeighbors(c)))
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

func (l *Life) neighborhood(c geom.Coord) iter.Seq[geom.Coord] {
	if !l.cfg.Wrap {
		return pattern.Moore(c)
	}
	return func(yield func(geom.Coord) bool) {
		for n := range pattern.Moore(c) {
			if !yield(l.cur.Wrap(n)) {
				return
			}
		}
	}
}

func (l *Life) liveNeighbors(c geom.Coord) int {
	n := 0
	for cell, err := range l.cur.Select(l.neighborhood(c)) {
		if err == nil && cell.Value == stateAlive {
			n++
		}
	}
	return n
}

func nextState(state uint8, neighbors int) uint8 {
	if neighbors == 3 || (state == stateAlive && neighbors == 2) {
		return stateAlive
	}
	return stateDead
}

// Glyph draws live cells as 'O'.
func (l *Life) Glyph(state uint8) rune {
	if state == stateAlive {
		return 'O'
	}
	return '∙'
}

// Parameters reports the generation counter and population.
func (l *Life) Parameters() core.ParameterSnapshot {
	alive := 0
	for _, v := range l.cur.All() {
		alive += int(v)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Life",
		Params: []core.Parameter{
			core.IntParam("gen", "Generation", l.gen),
			core.IntParam("alive", "Alive", alive),
			core.FloatParam("density", "Seed density", l.cfg.Density),
		},
	}}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
