package pattern

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/pkg/geom"
)

func square(n int32) []geom.Coord {
	r, _ := geom.NewRect(geom.C(n, n))
	return r.Coords()
}

func TestClusterSingleCoord(t *testing.T) {
	cl := NewCluster(slices.Values([]geom.Coord{geom.Origin}))
	assert.Empty(t, slices.Collect(cl.Interior()))
	assert.Equal(t, []geom.Coord{geom.Origin}, slices.Collect(cl.InternalBorder()))
	assert.ElementsMatch(t, slices.Collect(Moore(geom.Origin)), slices.Collect(cl.ExternalBorder()))
}

func TestClusterSquare(t *testing.T) {
	l := ClusterLayers(slices.Values(square(3)))
	assert.Equal(t, []geom.Coord{geom.C(1, 1)}, l.Interior)
	assert.Len(t, l.InternalBorder, 8)
	assert.Len(t, l.ExternalBorder, 16)
}

func TestClusterLayerInvariants(t *testing.T) {
	// An L-shaped room with a hole punched in it.
	var coords []geom.Coord
	for _, c := range square(7) {
		if c.X > 3 && c.Y > 3 || c == geom.C(2, 2) {
			continue
		}
		coords = append(coords, c)
	}
	// Repeats must not change the classification.
	coords = append(coords, coords[:5]...)

	cl := NewCluster(slices.Values(coords))
	require.Equal(t, 7*7-9-1, cl.Len())

	l := ClusterLayers(slices.Values(coords))
	assert.Equal(t, cl.Len(), len(l.Interior)+len(l.InternalBorder))

	members := append(append([]geom.Coord(nil), l.Interior...), l.InternalBorder...)
	assert.ElementsMatch(t, slices.Collect(cl.Members()), members)

	for _, c := range l.ExternalBorder {
		assert.False(t, cl.Contains(c), "%s is a member", c)
	}
	assert.Contains(t, l.ExternalBorder, geom.C(2, 2))
	assert.NotContains(t, l.Interior, geom.C(1, 1))
}

func TestClusterDeterministicOrder(t *testing.T) {
	coords := square(5)
	a := ClusterLayers(slices.Values(coords))
	b := ClusterLayers(slices.Values(coords))
	assert.Equal(t, a, b)
}
