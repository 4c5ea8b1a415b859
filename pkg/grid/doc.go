// Package grid provides Grid[T], a dense, bounds-addressed 2D store, and the
// iteration protocols used to read and write it by shape.
//
// Cells are addressed by geom.Coord relative to the grid's geom.Rect bounds.
// Accessors such as Get, Set, Copy, Swap and Move never fail loudly: an
// out-of-bounds coordinate simply reports false. Only the selection
// iterators report errors, one per offending coordinate, as a *CoordError
// wrapping ErrOutOfBounds or ErrAlreadyVisited:
//
//	for ref, err := range g.SelectMut(pattern.NewCircle(center, 7).Iter()) {
//		if err != nil {
//			continue
//		}
//		*ref.Value = '#'
//	}
//
// SelectMut hands out each cell at most once per pass, so overlapping
// shapes can be driven through it without deduplicating first.
//
// Flood is read-only. Collect its coordinates and feed them to SelectMut
// (or SetAll) to modify the filled region.
package grid
