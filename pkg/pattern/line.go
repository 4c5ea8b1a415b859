package pattern

import (
	"iter"

	"tapestry/pkg/geom"
)

// Line is a straight segment between two cells, both inclusive.
type Line struct {
	From, To geom.Coord
}

// NewLine returns the segment from -> to.
func NewLine(from, to geom.Coord) Line { return Line{From: from, To: to} }

func sign(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Iter traces Bresenham's algorithm from From to To. The axis with the larger
// absolute delta is stepped every iteration (Y wins ties); the minor axis is
// stepped whenever the error term drops below zero. The error term starts at
// half the major delta and is kept in doubled units so that half is exact.
func (l Line) Iter() iter.Seq[geom.Coord] {
	return func(yield func(geom.Coord) bool) {
		delta := l.To.Sub(l.From)
		xStep := geom.Coord{X: sign(delta.X)}
		yStep := geom.Coord{Y: sign(delta.Y)}

		major, minor := yStep, xStep
		majorDelta, minorDelta := abs(delta.Y), abs(delta.X)
		if abs(delta.X) > abs(delta.Y) {
			major, minor = xStep, yStep
			majorDelta, minorDelta = abs(delta.X), abs(delta.Y)
		}

		fault := majorDelta
		cur := l.From
		for {
			if !yield(cur) || cur == l.To {
				return
			}
			cur = cur.Add(major)
			fault -= 2 * minorDelta
			if fault < 0 {
				fault += 2 * majorDelta
				cur = cur.Add(minor)
			}
		}
	}
}

// Coords collects Iter into a slice.
func (l Line) Coords() []geom.Coord {
	var out []geom.Coord
	for c := range l.Iter() {
		out = append(out, c)
	}
	return out
}

// Polyline chains segments through points. Shared vertices are yielded once.
func Polyline(points ...geom.Coord) iter.Seq[geom.Coord] {
	return func(yield func(geom.Coord) bool) {
		if len(points) == 1 {
			yield(points[0])
			return
		}
		for i := 1; i < len(points); i++ {
			first := true
			for c := range NewLine(points[i-1], points[i]).Iter() {
				if first && i > 1 {
					first = false
					continue
				}
				first = false
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Polygon is a Polyline closed back to its first point. The starting vertex
// is yielded once.
func Polygon(points ...geom.Coord) iter.Seq[geom.Coord] {
	if len(points) < 3 {
		return Polyline(points...)
	}
	closed := append(append([]geom.Coord(nil), points...), points[0])
	return func(yield func(geom.Coord) bool) {
		// Hold one coordinate back so the closing vertex can be dropped.
		var (
			pending geom.Coord
			held    bool
		)
		for c := range Polyline(closed...) {
			if held && !yield(pending) {
				return
			}
			pending, held = c, true
		}
	}
}
