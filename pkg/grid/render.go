package grid

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Glypher is implemented by cell types that know how to draw themselves.
type Glypher interface {
	Glyph() rune
}

// Render draws g as text, one row per line.
func Render[T Glypher](g *Grid[T]) string {
	return RenderFunc(g, func(v T) rune { return v.Glyph() })
}

// RenderFunc draws g as text using glyph to pick each cell's rune, one row
// per line. Every column is padded to the terminal width of the widest glyph
// so that mixed-width runes stay aligned.
func RenderFunc[T any](g *Grid[T], glyph func(T) rune) string {
	var sb strings.Builder
	_ = WriteText(&sb, g, glyph)
	return sb.String()
}

// WriteText streams the RenderFunc output to w.
func WriteText[T any](w io.Writer, g *Grid[T], glyph func(T) rune) error {
	runes := make([]rune, len(g.cells))
	cellWidth := 1
	for i, v := range g.cells {
		r := glyph(v)
		runes[i] = r
		cellWidth = max(cellWidth, runewidth.RuneWidth(r))
	}

	width := int(g.bounds.Width())
	var row strings.Builder
	for start := 0; start < len(runes); start += width {
		row.Reset()
		for _, r := range runes[start : start+width] {
			row.WriteRune(r)
			if pad := cellWidth - runewidth.RuneWidth(r); pad > 0 {
				row.WriteString(strings.Repeat(" ", pad))
			}
		}
		row.WriteByte('\n')
		if _, err := io.WriteString(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}

// BoolGlyph returns a glyph function drawing true cells as on and false
// cells as off.
func BoolGlyph(on, off rune) func(bool) rune {
	return func(b bool) rune {
		if b {
			return on
		}
		return off
	}
}
