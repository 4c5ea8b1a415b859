// Package ring draws two concentric circles and floods the band between them.
package ring

import (
	"image/color"
	"iter"
	"slices"

	"tapestry/internal/core"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
	"tapestry/pkg/pattern"
)

// Cell states.
const (
	Background uint8 = 0
	Outline    uint8 = 1
	Fill       uint8 = 2
)

// Config holds parameters for the ring demo.
type Config struct {
	Width  int
	Height int
	Outer  int
	Inner  int
	// Batch is the number of cells filled per Step; 0 fills everything on Reset.
	Batch int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 19, Height: 19, Outer: 7, Inner: 3, Batch: 4}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.MapInt(cfg, "w", c.Width, 1)
	c.Height = core.MapInt(cfg, "h", c.Height, 1)
	c.Outer = core.MapInt(cfg, "outer", c.Outer, 0)
	c.Inner = core.MapInt(cfg, "inner", c.Inner, 0)
	c.Batch = core.MapInt(cfg, "batch", c.Batch, 0)
	return c
}

// Ring outlines both circles through SelectMut and then floods the band
// between them, a few cells per Step.
type Ring struct {
	cfg     Config
	cells   *grid.Grid[uint8]
	pending []geom.Coord
}

// New allocates a ring demo for cfg.
func New(cfg Config) (*Ring, error) {
	cells, err := core.NewCells(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Ring{cfg: cfg, cells: cells}, nil
}

// Name returns the simulation identifier.
func (r *Ring) Name() string { return "ring" }

// Size returns the grid dimensions.
func (r *Ring) Size() core.Size { return core.Size{W: r.cfg.Width, H: r.cfg.Height} }

// Cells exposes the drawing.
func (r *Ring) Cells() *grid.Grid[uint8] { return r.cells }

// Center is the shared centre of both circles.
func (r *Ring) Center() geom.Coord {
	return geom.C(int32(r.cfg.Width/2), int32(r.cfg.Height/2))
}

// FloodStart is the seed of the fill, roughly halfway between the two
// circles on the upper-left diagonal.
func (r *Ring) FloodStart() geom.Coord {
	d := int32(r.cfg.Inner+r.cfg.Outer) * 7 / 20
	return r.Center().Sub(geom.C(d, d))
}

// Reset redraws the outline and queues the fill. The seed is unused.
func (r *Ring) Reset(int64) {
	r.cells.Fill(Background)
	outer := pattern.NewCircle(r.Center(), int32(r.cfg.Outer))
	inner := pattern.NewCircle(r.Center(), int32(r.cfg.Inner))
	for ref, err := range r.cells.SelectMut(chain(outer.Iter(), inner.Iter())) {
		if err == nil {
			*ref.Value = Outline
		}
	}
	r.pending = r.cells.FloodCoords(r.FloodStart(), func(v uint8) bool { return v != Outline })
	if r.cfg.Batch <= 0 {
		r.fill(len(r.pending))
	}
}

// Step fills the next batch of queued cells.
func (r *Ring) Step() { r.fill(r.cfg.Batch) }

// Done reports whether the fill has finished.
func (r *Ring) Done() bool { return len(r.pending) == 0 }

func (r *Ring) fill(n int) {
	n = min(n, len(r.pending))
	r.cells.SetAll(slices.Values(r.pending[:n]), Fill)
	r.pending = r.pending[n:]
}

func chain(seqs ...iter.Seq[geom.Coord]) iter.Seq[geom.Coord] {
	return func(yield func(geom.Coord) bool) {
		for _, s := range seqs {
			for c := range s {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Glyph draws the outline as '#' and the fill as '/'.
func (r *Ring) Glyph(state uint8) rune {
	switch state {
	case Outline:
		return '#'
	case Fill:
		return '/'
	}
	return '∙'
}

// Palette colours background, outline and fill.
func (r *Ring) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 16, G: 16, B: 20, A: 255},
		{R: 240, G: 200, B: 80, A: 255},
		{R: 90, G: 160, B: 230, A: 255},
	}
}

// Parameters reports the fill progress.
func (r *Ring) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Ring",
		Params: []core.Parameter{
			core.IntParam("outer", "Outer radius", r.cfg.Outer),
			core.IntParam("inner", "Inner radius", r.cfg.Inner),
			core.IntParam("pending", "Cells to fill", len(r.pending)),
		},
	}}}
}

func init() {
	core.Register("ring", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
