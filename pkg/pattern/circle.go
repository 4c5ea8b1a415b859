package pattern

import (
	"iter"

	"tapestry/pkg/geom"
)

// Circle is the outline of a circle of integer radius around Center.
type Circle struct {
	Center geom.Coord
	Radius int32
}

// NewCircle returns the outline of radius r around center.
func NewCircle(center geom.Coord, r int32) Circle { return Circle{Center: center, Radius: r} }

// octants maps an offset computed in the first octant onto all eight.
func (c Circle) octants(p geom.Coord) [8]geom.Coord {
	return [8]geom.Coord{
		c.Center.Add(p),
		c.Center.Add(p.Flip()),
		c.Center.Add(p.Flip().NegateX()),
		c.Center.Add(p.NegateX()),
		c.Center.Add(p.Negate()),
		c.Center.Add(p.Flip().Negate()),
		c.Center.Add(p.Flip().NegateY()),
		c.Center.Add(p.NegateY()),
	}
}

// Iter traces the midpoint circle algorithm over one octant and mirrors each
// point into the other seven. Coordinates shared between octants are yielded
// once. A zero radius yields only the center; a negative one yields nothing.
func (c Circle) Iter() iter.Seq[geom.Coord] {
	return func(yield func(geom.Coord) bool) {
		if c.Radius < 0 {
			return
		}
		seen := make(map[geom.Coord]struct{}, 8*(int(c.Radius)+1))
		emit := func(p geom.Coord) bool {
			for _, m := range c.octants(p) {
				if _, dup := seen[m]; dup {
					continue
				}
				seen[m] = struct{}{}
				if !yield(m) {
					return false
				}
			}
			return true
		}

		cursor := geom.Coord{X: 0, Y: c.Radius}
		d := 3 - 2*c.Radius
		if !emit(cursor) {
			return
		}
		for cursor.Y > cursor.X {
			cursor.X++
			if d < 0 {
				d += 4*cursor.X + 6
			} else {
				cursor.Y--
				d += 4*(cursor.X-cursor.Y) + 10
			}
			if !emit(cursor) {
				return
			}
		}
	}
}

// Coords collects Iter into a slice.
func (c Circle) Coords() []geom.Coord {
	var out []geom.Coord
	for p := range c.Iter() {
		out = append(out, p)
	}
	return out
}
