package pattern

import (
	"iter"

	"tapestry/pkg/geom"
)

// Offset tables for the standard neighborhoods, clockwise from North.
var (
	MooreOffsets = []geom.Coord{
		geom.North, geom.NorthEast, geom.East, geom.SouthEast,
		geom.South, geom.SouthWest, geom.West, geom.NorthWest,
	}
	VonNeumannOffsets = []geom.Coord{geom.North, geom.East, geom.South, geom.West}
	DiagonalOffsets   = []geom.Coord{geom.NorthEast, geom.SouthEast, geom.SouthWest, geom.NorthWest}
)

// Anchor yields each offset translated by c.
func Anchor(c geom.Coord, offsets []geom.Coord) iter.Seq[geom.Coord] {
	return func(yield func(geom.Coord) bool) {
		for _, off := range offsets {
			if !yield(c.Add(off)) {
				return
			}
		}
	}
}

// Moore yields the eight orthogonal and diagonal neighbors of c.
func Moore(c geom.Coord) iter.Seq[geom.Coord] { return Anchor(c, MooreOffsets) }

// VonNeumann yields the four orthogonal neighbors of c.
func VonNeumann(c geom.Coord) iter.Seq[geom.Coord] { return Anchor(c, VonNeumannOffsets) }

// Diagonal yields the four diagonal neighbors of c.
func Diagonal(c geom.Coord) iter.Seq[geom.Coord] { return Anchor(c, DiagonalOffsets) }
