package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/pkg/geom"
	"tapestry/pkg/pattern"
)

func isTrue(b bool) bool { return b }

func TestFloodWholeGrid(t *testing.T) {
	g := newGrid[bool](t, 4, 4)
	g.Fill(true)

	seen := map[geom.Coord]int{}
	for c, v := range g.Flood(geom.Origin, isTrue) {
		assert.True(t, v)
		seen[c]++
	}
	assert.Len(t, seen, 16)
	for c, n := range seen {
		assert.Equal(t, 1, n, "%s", c)
		assert.True(t, g.Bounds().Contains(c))
	}
}

func TestFloodStartFailsPredicate(t *testing.T) {
	g := newGrid[bool](t, 4, 4)
	assert.Empty(t, g.FloodCoords(geom.C(1, 1), isTrue))
}

func TestFloodStartOutOfBounds(t *testing.T) {
	g := newGrid[bool](t, 4, 4)
	g.Fill(true)
	assert.Empty(t, g.FloodCoords(geom.C(-1, 0), isTrue))
}

func parseBools(t *testing.T, rows ...string) *Grid[bool] {
	t.Helper()
	g := newGrid[bool](t, int32(len(rows[0])), int32(len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			g.Set(geom.C(int32(x), int32(y)), ch == '#')
		}
	}
	return g
}

func TestFloodRegionIsFourConnected(t *testing.T) {
	g := parseBools(t,
		"##..#",
		".#..#",
		".##.#",
		"#...#",
	)
	got := g.FloodCoords(geom.Origin, isTrue)
	assert.ElementsMatch(t, []geom.Coord{
		geom.C(0, 0), geom.C(1, 0), geom.C(1, 1), geom.C(1, 2), geom.C(2, 2),
	}, got)
	assert.Equal(t, geom.Origin, got[0], "start comes first")

	// (0,3) only touches the region diagonally.
	assert.NotContains(t, got, geom.C(0, 3))
}

func TestFloodWithConn8(t *testing.T) {
	g := parseBools(t,
		"#...",
		".#..",
		"..#.",
		"...#",
	)
	assert.Len(t, g.FloodCoords(geom.Origin, isTrue), 1)

	var diag []geom.Coord
	for c := range g.FloodWith(geom.Origin, isTrue, Conn8) {
		diag = append(diag, c)
	}
	assert.Equal(t, []geom.Coord{geom.C(0, 0), geom.C(1, 1), geom.C(2, 2), geom.C(3, 3)}, diag)
}

func TestFloodInsideRing(t *testing.T) {
	g := newGrid[rune](t, 19, 19)
	g.Fill('.')
	g.SetAll(pattern.NewCircle(geom.C(9, 9), 7).Iter(), '#')

	inside := g.FloodCoords(geom.C(9, 9), func(r rune) bool { return r != '#' })
	require.NotEmpty(t, inside)
	for _, c := range inside {
		d := c.Sub(geom.C(9, 9))
		assert.Less(t, d.X*d.X+d.Y*d.Y, int32(8*8), "%s leaked out of the ring", c)
	}
	n := g.SetAll(func(yield func(geom.Coord) bool) {
		for _, c := range inside {
			if !yield(c) {
				return
			}
		}
	}, '/')
	assert.Equal(t, len(inside), n)

	outside := g.FloodCoords(geom.Origin, func(r rune) bool { return r == '.' })
	assert.Equal(t, g.Len()-len(inside)-len(pattern.NewCircle(geom.C(9, 9), 7).Coords()), len(outside))
}

func TestFloodStopsEarly(t *testing.T) {
	g := newGrid[bool](t, 10, 10)
	g.Fill(true)
	n := 0
	for range g.Flood(geom.C(5, 5), isTrue) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
