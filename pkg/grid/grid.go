package grid

import (
	"fmt"

	"tapestry/pkg/geom"
)

// Grid stores one value of type T for every coordinate inside its bounds, in
// row-major order. A Grid never grows or shrinks after construction.
type Grid[T any] struct {
	cells  []T
	bounds geom.Rect
}

// New allocates a zero-valued cell for every coordinate in bounds.
func New[T any](bounds geom.Rect) (*Grid[T], error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBounds, err)
	}
	return &Grid[T]{cells: make([]T, bounds.Area()), bounds: bounds}, nil
}

// WithGenerator fills each cell with gen(coord), calling gen exactly once per
// coordinate in row-major order.
func WithGenerator[T any](bounds geom.Rect, gen func(geom.Coord) T) (*Grid[T], error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBounds, err)
	}
	cells := make([]T, 0, bounds.Area())
	for c := range bounds.Iter() {
		cells = append(cells, gen(c))
	}
	return &Grid[T]{cells: cells, bounds: bounds}, nil
}

// Bounds returns the region covered by g.
func (g *Grid[T]) Bounds() geom.Rect { return g.bounds }

// Len returns the number of cells, always Bounds().Area().
func (g *Grid[T]) Len() int { return len(g.cells) }

// CoordToIndex maps c to its position in the backing store.
func (g *Grid[T]) CoordToIndex(c geom.Coord) (int, bool) {
	if !g.bounds.Contains(c) {
		return 0, false
	}
	off := c.Sub(g.bounds.Offset())
	return int(off.X) + int(off.Y)*int(g.bounds.Width()), true
}

// IndexToCoord is the inverse of CoordToIndex.
func (g *Grid[T]) IndexToCoord(i int) (geom.Coord, bool) {
	if i < 0 || i >= len(g.cells) {
		return geom.Coord{}, false
	}
	w := int(g.bounds.Width())
	return g.bounds.Offset().Add(geom.Coord{X: int32(i % w), Y: int32(i / w)}), true
}

// Get returns the value at c.
func (g *Grid[T]) Get(c geom.Coord) (T, bool) {
	i, ok := g.CoordToIndex(c)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// GetMut returns a pointer to the cell at c. The pointer stays valid for the
// lifetime of g.
func (g *Grid[T]) GetMut(c geom.Coord) (*T, bool) {
	i, ok := g.CoordToIndex(c)
	if !ok {
		return nil, false
	}
	return &g.cells[i], true
}

// Set stores v at c and reports whether c was in bounds.
func (g *Grid[T]) Set(c geom.Coord, v T) bool {
	i, ok := g.CoordToIndex(c)
	if ok {
		g.cells[i] = v
	}
	return ok
}

// Replace stores v at c and returns the previous value.
func (g *Grid[T]) Replace(c geom.Coord, v T) (T, bool) {
	i, ok := g.CoordToIndex(c)
	if !ok {
		var zero T
		return zero, false
	}
	prev := g.cells[i]
	g.cells[i] = v
	return prev, true
}

// Take resets the cell at c to the zero value and returns what it held.
func (g *Grid[T]) Take(c geom.Coord) (T, bool) {
	var zero T
	return g.Replace(c, zero)
}

// Copy duplicates the value at src into dst. Nothing changes unless both are
// in bounds.
func (g *Grid[T]) Copy(src, dst geom.Coord) bool {
	si, ok := g.CoordToIndex(src)
	if !ok {
		return false
	}
	di, ok := g.CoordToIndex(dst)
	if !ok {
		return false
	}
	g.cells[di] = g.cells[si]
	return true
}

// Swap exchanges the values at a and b.
func (g *Grid[T]) Swap(a, b geom.Coord) bool {
	ai, ok := g.CoordToIndex(a)
	if !ok {
		return false
	}
	bi, ok := g.CoordToIndex(b)
	if !ok {
		return false
	}
	g.cells[ai], g.cells[bi] = g.cells[bi], g.cells[ai]
	return true
}

// Move relocates the value at src into dst, leaving the zero value behind,
// and returns the previous occupant of dst. Both coordinates are checked
// before anything is written. Moving a cell onto itself leaves it unchanged.
func (g *Grid[T]) Move(src, dst geom.Coord) (T, bool) {
	var zero T
	si, ok := g.CoordToIndex(src)
	if !ok {
		return zero, false
	}
	di, ok := g.CoordToIndex(dst)
	if !ok {
		return zero, false
	}
	if si == di {
		return g.cells[di], true
	}
	prev := g.cells[di]
	g.cells[di] = g.cells[si]
	g.cells[si] = zero
	return prev, true
}

// Fill stores v in every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a shallow copy of g with its own backing store.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{cells: append([]T(nil), g.cells...), bounds: g.bounds}
}

// Values exposes the backing store in row-major order. Writes through the
// returned slice are visible in g.
func (g *Grid[T]) Values() []T { return g.cells }

// Wrap maps c onto the grid toroidally, so coordinates past one edge re-enter
// from the opposite one.
func (g *Grid[T]) Wrap(c geom.Coord) geom.Coord {
	b := g.bounds
	w, h := b.Width(), b.Height()
	x := ((c.X-b.Left)%w+w)%w + b.Left
	y := ((c.Y-b.Top)%h+h)%h + b.Top
	return geom.Coord{X: x, Y: y}
}
