// Package braille packs boolean grids into Unicode braille glyphs, one glyph
// per 2x4 block of cells.
package braille

import (
	"errors"
	"fmt"

	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
)

// ErrTooSmall is returned when the source grid cannot hold a single 2x4 block.
var ErrTooSmall = errors.New("braille: grid smaller than one 2x4 block")

const (
	// BlockWidth and BlockHeight are the cells covered by one glyph.
	BlockWidth  = 2
	BlockHeight = 4

	// blank is U+2800, the empty braille pattern.
	blank rune = 0x2800
)

// dotOrder maps a block cell, read row by row, to its braille dot bit.
// Braille numbers dots down the first three rows of each column before the
// bottom row.
var dotOrder = [8]uint8{0, 3, 1, 4, 2, 5, 6, 7}

// Encode converts bits into a grid of braille glyphs anchored at the origin.
// Output dimensions are width/2 by height/4; trailing cells that do not fill
// a whole block are dropped.
func Encode(bits *grid.Grid[bool]) (*grid.Grid[rune], error) {
	src := bits.Bounds()
	dims := geom.C(src.Width()/BlockWidth, src.Height()/BlockHeight)
	bounds, err := geom.NewRect(dims)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTooSmall, src)
	}
	return grid.WithGenerator(bounds, func(c geom.Coord) rune {
		corner := src.Offset().Add(c.Mul(geom.C(BlockWidth, BlockHeight)))
		block := geom.Rect{
			Top:    corner.Y,
			Bottom: corner.Y + BlockHeight,
			Left:   corner.X,
			Right:  corner.X + BlockWidth,
		}
		var (
			b uint8
			i int
		)
		for cell, err := range bits.Select(block.Iter()) {
			if err == nil && cell.Value {
				b |= 1 << dotOrder[i]
			}
			i++
		}
		return Glyph(b)
	})
}

// Glyph returns the braille pattern for a dot bitmask.
func Glyph(dots uint8) rune { return blank + rune(dots) }

// String renders bits as braille text, one line per glyph row.
func String(bits *grid.Grid[bool]) (string, error) {
	glyphs, err := Encode(bits)
	if err != nil {
		return "", err
	}
	return grid.RenderFunc(glyphs, func(r rune) rune { return r }), nil
}
