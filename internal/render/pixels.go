package render

import (
	"image"
	"image/color"

	"tapestry/internal/core"
	"tapestry/pkg/grid"
)

// BinaryPalette maps state 0 to off and every other state to on.
func BinaryPalette(on, off color.Color) []color.RGBA {
	return []color.RGBA{toRGBA(off), toRGBA(on)}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// PaletteFor returns the sim's own palette, or white on black for two-state sims.
func PaletteFor(sim core.Sim) []color.RGBA {
	if p, ok := sim.(core.Paletted); ok && len(p.Palette()) > 0 {
		return p.Palette()
	}
	return BinaryPalette(color.White, color.Black)
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. States past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells *grid.Grid[uint8], palette []color.RGBA) {
	values := cells.Values()
	if len(palette) == 0 {
		clear(buf[:4*len(values)])
		return
	}

	last := len(palette) - 1
	for i, c := range values {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image paints cells into a new RGBA image, one pixel per cell scaled up by
// scale. The image is anchored at the origin whatever the grid's bounds.
func Image(cells *grid.Grid[uint8], palette []color.RGBA, scale int) *image.RGBA {
	scale = max(scale, 1)
	dims := cells.Bounds().Dimensions()
	w, h := int(dims.X), int(dims.Y)
	src := &image.RGBA{Pix: make([]byte, 4*w*h), Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	fillPaletteRGBA(src.Pix, cells, palette)
	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := range h * scale {
		for x := range w * scale {
			dst.SetRGBA(x, y, src.RGBAAt(x/scale, y/scale))
		}
	}
	return dst
}
