package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/pkg/geom"
)

func rect(t testing.TB, a, b geom.Coord) geom.Rect {
	t.Helper()
	r, err := geom.WithCorners(a, b)
	require.NoError(t, err)
	return r
}

func newGrid[T any](t testing.TB, w, h int32) *Grid[T] {
	t.Helper()
	g, err := New[T](rect(t, geom.Origin, geom.C(w, h)))
	require.NoError(t, err)
	return g
}

func TestNewRejectsEmptyBounds(t *testing.T) {
	_, err := New[int](geom.Rect{})
	assert.ErrorIs(t, err, ErrInvalidBounds)
	assert.ErrorIs(t, err, geom.ErrEmptyRect)

	_, err = WithGenerator(geom.Rect{Left: 3, Right: 3, Top: 0, Bottom: 2}, func(geom.Coord) int { return 1 })
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestBoundsAndLen(t *testing.T) {
	g := newGrid[struct{}](t, 8, 4)
	assert.Equal(t, int32(8), g.Bounds().Width())
	assert.Equal(t, 32, g.Len())
	assert.Equal(t, g.Bounds().Area(), g.Len())
}

func TestIndexBijection(t *testing.T) {
	bounds := []geom.Rect{
		rect(t, geom.Origin, geom.C(8, 4)),
		rect(t, geom.C(-8, -8), geom.C(8, 8)),
		rect(t, geom.C(5, -3), geom.C(6, 9)),
		rect(t, geom.C(-2, 7), geom.C(11, 8)),
	}
	for _, b := range bounds {
		g, err := New[int](b)
		require.NoError(t, err)

		seen := make(map[int]bool, g.Len())
		for c := range b.Iter() {
			i, ok := g.CoordToIndex(c)
			require.True(t, ok, "%s in %s", c, b)
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, g.Len())
			assert.False(t, seen[i], "index %d reused", i)
			seen[i] = true

			back, ok := g.IndexToCoord(i)
			require.True(t, ok)
			assert.Equal(t, c, back)
		}
		assert.Len(t, seen, g.Len())

		for i := 0; i < g.Len(); i++ {
			c, ok := g.IndexToCoord(i)
			require.True(t, ok)
			j, ok := g.CoordToIndex(c)
			require.True(t, ok)
			assert.Equal(t, i, j)
		}
	}
}

func TestIndexToCoordRowMajor(t *testing.T) {
	g := newGrid[struct{}](t, 8, 4)
	c, ok := g.IndexToCoord(12)
	require.True(t, ok)
	assert.Equal(t, geom.C(4, 1), c)

	_, ok = g.IndexToCoord(-1)
	assert.False(t, ok)
	_, ok = g.IndexToCoord(32)
	assert.False(t, ok)
}

func TestWithGeneratorCallsOncePerCoord(t *testing.T) {
	b := rect(t, geom.C(-3, 2), geom.C(4, 7))
	calls := map[geom.Coord]int{}
	var order []geom.Coord
	g, err := WithGenerator(b, func(c geom.Coord) geom.Coord {
		calls[c]++
		order = append(order, c)
		return c
	})
	require.NoError(t, err)

	assert.Len(t, order, b.Area())
	assert.Len(t, calls, b.Area())
	for c, n := range calls {
		assert.Equal(t, 1, n, "%s", c)
	}
	assert.Equal(t, b.Coords(), order)
	for c, v := range g.All() {
		assert.Equal(t, c, v)
	}
}

func TestGetOutOfBounds(t *testing.T) {
	g := newGrid[int](t, 8, 8)
	_, ok := g.Get(geom.C(-1, 4))
	assert.False(t, ok)
	_, ok = g.Get(geom.C(8, 0))
	assert.False(t, ok)
	p, ok := g.GetMut(geom.C(0, 8))
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestSetReplaceTake(t *testing.T) {
	g := newGrid[string](t, 3, 3)
	c := geom.C(1, 2)

	assert.True(t, g.Set(c, "a"))
	v, ok := g.Get(c)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	prev, ok := g.Replace(c, "b")
	require.True(t, ok)
	assert.Equal(t, "a", prev)

	prev, ok = g.Take(c)
	require.True(t, ok)
	assert.Equal(t, "b", prev)
	v, _ = g.Get(c)
	assert.Equal(t, "", v)

	p, ok := g.GetMut(c)
	require.True(t, ok)
	*p = "c"
	v, _ = g.Get(c)
	assert.Equal(t, "c", v)

	outside := geom.C(3, 0)
	assert.False(t, g.Set(outside, "x"))
	_, ok = g.Replace(outside, "x")
	assert.False(t, ok)
	_, ok = g.Take(outside)
	assert.False(t, ok)
}

func TestCopySwapMove(t *testing.T) {
	g, err := WithGenerator(rect(t, geom.Origin, geom.C(3, 1)), func(c geom.Coord) int {
		return int(c.X) + 1
	})
	require.NoError(t, err)
	a, b, c := geom.C(0, 0), geom.C(1, 0), geom.C(2, 0)

	assert.True(t, g.Copy(a, c))
	assert.Equal(t, []int{1, 2, 1}, g.Values())

	assert.True(t, g.Swap(a, b))
	assert.Equal(t, []int{2, 1, 1}, g.Values())

	prev, ok := g.Move(a, c)
	require.True(t, ok)
	assert.Equal(t, 1, prev)
	assert.Equal(t, []int{0, 1, 2}, g.Values())

	prev, ok = g.Move(b, b)
	require.True(t, ok)
	assert.Equal(t, 1, prev)
	assert.Equal(t, []int{0, 1, 2}, g.Values())
}

func TestCopySwapMoveOutOfBoundsIsNoop(t *testing.T) {
	g, err := WithGenerator(rect(t, geom.Origin, geom.C(2, 2)), func(c geom.Coord) int {
		return int(c.X + 2*c.Y)
	})
	require.NoError(t, err)
	before := append([]int(nil), g.Values()...)
	in, out := geom.C(1, 1), geom.C(5, 5)

	assert.False(t, g.Copy(in, out))
	assert.False(t, g.Copy(out, in))
	assert.False(t, g.Swap(in, out))
	assert.False(t, g.Swap(out, in))
	_, ok := g.Move(in, out)
	assert.False(t, ok)
	_, ok = g.Move(out, in)
	assert.False(t, ok)

	assert.Equal(t, before, g.Values())
}

func TestFillAndClone(t *testing.T) {
	g := newGrid[int](t, 4, 4)
	g.Fill(7)
	clone := g.Clone()
	g.Set(geom.Origin, 1)

	v, _ := clone.Get(geom.Origin)
	assert.Equal(t, 7, v)
	assert.Equal(t, g.Bounds(), clone.Bounds())
	for _, v := range clone.Values() {
		assert.Equal(t, 7, v)
	}
}

func TestWrap(t *testing.T) {
	g, err := New[int](rect(t, geom.C(-2, 1), geom.C(3, 4)))
	require.NoError(t, err)
	tests := []struct{ in, want geom.Coord }{
		{geom.C(0, 2), geom.C(0, 2)},
		{geom.C(3, 2), geom.C(-2, 2)},
		{geom.C(-3, 2), geom.C(2, 2)},
		{geom.C(0, 0), geom.C(0, 3)},
		{geom.C(0, 4), geom.C(0, 1)},
		{geom.C(13, -8), geom.C(-2, 1)},
	}
	for _, tc := range tests {
		got := g.Wrap(tc.in)
		assert.Equal(t, tc.want, got, "wrap %s", tc.in)
		assert.True(t, g.Bounds().Contains(got))
	}
}
