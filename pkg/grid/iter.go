package grid

import (
	"iter"

	"tapestry/pkg/geom"
)

// Cell is a read-only view of one selected cell.
type Cell[T any] struct {
	Coord geom.Coord
	Value T
}

// CellRef is an exclusive handle to one selected cell. Within a single
// SelectMut pass no two CellRefs point at the same cell.
type CellRef[T any] struct {
	Coord geom.Coord
	Value *T
}

// All yields every cell in storage order.
func (g *Grid[T]) All() iter.Seq2[geom.Coord, T] {
	return func(yield func(geom.Coord, T) bool) {
		for i, v := range g.cells {
			c, _ := g.IndexToCoord(i)
			if !yield(c, v) {
				return
			}
		}
	}
}

// AllMut yields a pointer to every cell in storage order.
func (g *Grid[T]) AllMut() iter.Seq2[geom.Coord, *T] {
	return func(yield func(geom.Coord, *T) bool) {
		for i := range g.cells {
			c, _ := g.IndexToCoord(i)
			if !yield(c, &g.cells[i]) {
				return
			}
		}
	}
}

// Select yields one item per coordinate in coords: the cell when it exists,
// otherwise a *CoordError wrapping ErrOutOfBounds. It never skips or stops
// early on its own.
func (g *Grid[T]) Select(coords iter.Seq[geom.Coord]) iter.Seq2[Cell[T], error] {
	return func(yield func(Cell[T], error) bool) {
		for c := range coords {
			i, ok := g.CoordToIndex(c)
			if !ok {
				if !yield(Cell[T]{Coord: c}, outOfBounds(c)) {
					return
				}
				continue
			}
			if !yield(Cell[T]{Coord: c, Value: g.cells[i]}, nil) {
				return
			}
		}
	}
}

// SelectMut is the mutable counterpart of Select. Each cell is handed out at
// most once per pass: a repeated coordinate yields a *CoordError wrapping
// ErrAlreadyVisited instead of a second handle, and iteration continues.
func (g *Grid[T]) SelectMut(coords iter.Seq[geom.Coord]) iter.Seq2[CellRef[T], error] {
	return func(yield func(CellRef[T], error) bool) {
		visited := make(map[int]struct{})
		for c := range coords {
			i, ok := g.CoordToIndex(c)
			if !ok {
				if !yield(CellRef[T]{Coord: c}, outOfBounds(c)) {
					return
				}
				continue
			}
			if _, dup := visited[i]; dup {
				Logger().Debug("grid: selection revisits cell", "coord", c)
				if !yield(CellRef[T]{Coord: c}, alreadyVisited(c)) {
					return
				}
				continue
			}
			visited[i] = struct{}{}
			if !yield(CellRef[T]{Coord: c, Value: &g.cells[i]}, nil) {
				return
			}
		}
	}
}

// SetAll stores v in every in-bounds cell named by coords and returns how
// many cells were written. Out-of-bounds and repeated coordinates are skipped.
func (g *Grid[T]) SetAll(coords iter.Seq[geom.Coord], v T) int {
	n := 0
	for ref, err := range g.SelectMut(coords) {
		if err != nil {
			continue
		}
		*ref.Value = v
		n++
	}
	return n
}
