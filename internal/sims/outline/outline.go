// Package outline draws a pentagon with Bresenham lines, floods its interior
// and renders the result as braille.
package outline

import (
	"slices"

	"tapestry/internal/core"
	"tapestry/pkg/braille"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
	"tapestry/pkg/pattern"
)

// Reference shape, laid out on a 60x50 board and scaled to the configured size.
var (
	refSize  = geom.C(60, 50)
	refShape = []geom.Coord{
		geom.C(27, 3),
		geom.C(52, 12),
		geom.C(50, 42),
		geom.C(20, 45),
		geom.C(5, 20),
	}
	refSeed = geom.C(32, 32)
)

// Config holds parameters for the outline demo.
type Config struct {
	Width  int
	Height int
	Fill   bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 60, Height: 50, Fill: true}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.MapInt(cfg, "w", c.Width, braille.BlockWidth)
	c.Height = core.MapInt(cfg, "h", c.Height, braille.BlockHeight)
	c.Fill = core.MapBool(cfg, "fill", c.Fill)
	return c
}

// Outline keeps the drawing as a bitmap and mirrors it into Cells for the
// viewers.
type Outline struct {
	cfg   Config
	bits  *grid.Grid[bool]
	cells *grid.Grid[uint8]
}

// New allocates an outline demo for cfg.
func New(cfg Config) (*Outline, error) {
	cells, err := core.NewCells(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	bits, err := grid.New[bool](cells.Bounds())
	if err != nil {
		return nil, err
	}
	return &Outline{cfg: cfg, bits: bits, cells: cells}, nil
}

// Name returns the simulation identifier.
func (o *Outline) Name() string { return "outline" }

// Size returns the grid dimensions.
func (o *Outline) Size() core.Size { return core.Size{W: o.cfg.Width, H: o.cfg.Height} }

// Cells exposes the bitmap as 0/1 states.
func (o *Outline) Cells() *grid.Grid[uint8] { return o.cells }

// Bits exposes the bitmap.
func (o *Outline) Bits() *grid.Grid[bool] { return o.bits }

// Step does nothing; the drawing is static.
func (o *Outline) Step() {}

// Vertices returns the pentagon scaled to the board.
func (o *Outline) Vertices() []geom.Coord {
	out := make([]geom.Coord, len(refShape))
	for i, v := range refShape {
		out[i] = o.scale(v)
	}
	return out
}

func (o *Outline) scale(c geom.Coord) geom.Coord {
	return geom.C(
		c.X*int32(o.cfg.Width)/refSize.X,
		c.Y*int32(o.cfg.Height)/refSize.Y,
	)
}

// Reset redraws the shape. The seed is unused.
func (o *Outline) Reset(int64) {
	o.bits.Fill(false)
	o.bits.SetAll(pattern.Polygon(o.Vertices()...), true)
	if o.cfg.Fill {
		inside := o.bits.FloodCoords(o.scale(refSeed), func(v bool) bool { return !v })
		o.bits.SetAll(slices.Values(inside), true)
	}
	for c, v := range o.bits.All() {
		var state uint8
		if v {
			state = 1
		}
		o.cells.Set(c, state)
	}
}

// Braille renders the bitmap as braille text.
func (o *Outline) Braille() (string, error) {
	return braille.String(o.bits)
}

// Glyph draws set cells as '#'.
func (o *Outline) Glyph(state uint8) rune {
	if state != 0 {
		return '#'
	}
	return ' '
}

func init() {
	core.Register("outline", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
