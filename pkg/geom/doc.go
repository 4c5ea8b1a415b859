// Package geom holds the coordinate space shared by the grid and pattern
// packages: integer Coords, half-open Rects and binary space partitioning.
//
// Rects use exclusive Right and Bottom edges, so a Rect built from the
// dimensions (w, h) covers exactly w*h cells. Construction rejects empty
// Rects with ErrEmptyRect.
//
// BSP splitting is driven by a caller-supplied Splitter. Randomised
// splitters take an explicit *rand.Rand so partitions are reproducible
// under a fixed seed:
//
//	rng := rand.New(rand.NewPCG(42, 0))
//	tree, err := bounds.BSP(geom.Horizontal, geom.RandomSplitter(rng, 8))
package geom
