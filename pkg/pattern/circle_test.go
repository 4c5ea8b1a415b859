package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tapestry/pkg/geom"
)

func TestCircleRadiusZero(t *testing.T) {
	assert.Equal(t, []geom.Coord{geom.C(3, -2)}, NewCircle(geom.C(3, -2), 0).Coords())
}

func TestCircleNegativeRadius(t *testing.T) {
	assert.Empty(t, NewCircle(geom.Origin, -1).Coords())
}

func TestCircleRadiusOne(t *testing.T) {
	assert.ElementsMatch(t, []geom.Coord{
		geom.C(0, 1), geom.C(1, 0), geom.C(0, -1), geom.C(-1, 0),
	}, NewCircle(geom.Origin, 1).Coords())
}

func TestCircleSymmetryAndConnectivity(t *testing.T) {
	for r := int32(1); r <= 12; r++ {
		coords := NewCircle(geom.Origin, r).Coords()
		set := make(map[geom.Coord]bool, len(coords))
		for _, c := range coords {
			assert.False(t, set[c], "radius %d: %s yielded twice", r, c)
			set[c] = true
		}
		for c := range set {
			assert.True(t, set[c.NegateX()], "radius %d: x-reflection of %s", r, c)
			assert.True(t, set[c.NegateY()], "radius %d: y-reflection of %s", r, c)
			assert.True(t, set[c.Flip()], "radius %d: diagonal reflection of %s", r, c)

			connected := false
			for n := range Moore(c) {
				if set[n] {
					connected = true
					break
				}
			}
			assert.True(t, connected, "radius %d: %s is isolated", r, c)
		}
		assert.True(t, set[geom.C(0, r)])
		assert.True(t, set[geom.C(r, 0)])
	}
}

func TestCircleAnchored(t *testing.T) {
	center := geom.C(9, 9)
	base := NewCircle(geom.Origin, 7).Coords()
	moved := NewCircle(center, 7).Coords()
	assert.Len(t, moved, len(base))
	for i := range base {
		assert.Equal(t, base[i].Add(center), moved[i])
	}
}
