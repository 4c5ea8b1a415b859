package grid

import (
	"iter"

	"tapestry/pkg/geom"
	"tapestry/pkg/pattern"
)

// Connectivity selects which neighbors a flood expands into.
type Connectivity int

const (
	// Conn4 expands through the four orthogonal neighbors.
	Conn4 Connectivity = iota
	// Conn8 also expands through diagonals.
	Conn8
)

func (c Connectivity) offsets() []geom.Coord {
	if c == Conn8 {
		return pattern.MooreOffsets
	}
	return pattern.VonNeumannOffsets
}

// Flood walks the 4-connected region around start breadth-first, yielding
// every in-bounds cell whose value satisfies pred. Cells that fail pred are
// not yielded and are not expanded. Nothing is yielded when start is out of
// bounds or fails pred itself.
//
// Flood borrows g for reading only; collect the coordinates first and pass
// them to SelectMut to modify the region.
func (g *Grid[T]) Flood(start geom.Coord, pred func(T) bool) iter.Seq2[geom.Coord, T] {
	return g.FloodWith(start, pred, Conn4)
}

// FloodWith is Flood with a chosen connectivity.
func (g *Grid[T]) FloodWith(start geom.Coord, pred func(T) bool, conn Connectivity) iter.Seq2[geom.Coord, T] {
	return func(yield func(geom.Coord, T) bool) {
		si, ok := g.CoordToIndex(start)
		if !ok {
			Logger().Debug("grid: flood start out of bounds", "start", start)
			return
		}
		offsets := conn.offsets()
		searched := make([]bool, len(g.cells))
		searched[si] = true
		queue := []int{si}
		yielded := 0
		for head := 0; head < len(queue); head++ {
			i := queue[head]
			v := g.cells[i]
			if !pred(v) {
				continue
			}
			c, _ := g.IndexToCoord(i)
			for _, off := range offsets {
				ni, ok := g.CoordToIndex(c.Add(off))
				if !ok || searched[ni] {
					continue
				}
				searched[ni] = true
				queue = append(queue, ni)
			}
			yielded++
			if !yield(c, v) {
				return
			}
		}
		Logger().Debug("grid: flood done", "start", start, "cells", yielded, "searched", len(queue))
	}
}

// FloodCoords collects the coordinates of Flood.
func (g *Grid[T]) FloodCoords(start geom.Coord, pred func(T) bool) []geom.Coord {
	var out []geom.Coord
	for c := range g.Flood(start, pred) {
		out = append(out, c)
	}
	return out
}
