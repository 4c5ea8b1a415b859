package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/internal/core"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
)

// board parses rows of digits into a state grid.
func board(t *testing.T, rows ...string) *grid.Grid[uint8] {
	t.Helper()
	g, err := core.NewCells(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		for x, ch := range row {
			g.Set(geom.C(int32(x), int32(y)), uint8(ch-'0'))
		}
	}
	return g
}

func TestPickRegionFourConnected(t *testing.T) {
	g := board(t,
		"11000",
		"11000",
		"00100",
		"00000",
	)
	r, ok := PickRegion(g, geom.C(0, 0), grid.Conn4)
	require.True(t, ok)
	assert.Equal(t, uint8(1), r.State)
	assert.ElementsMatch(t, []geom.Coord{geom.C(0, 0), geom.C(1, 0), geom.C(0, 1), geom.C(1, 1)}, r.Cells)
	// The border is clipped to the board: (2,0) (2,1) (0,2) (1,2) (2,2).
	assert.Len(t, r.Border, 5)
	assert.Contains(t, r.Border, geom.C(2, 2))
}

func TestPickRegionEightConnected(t *testing.T) {
	g := board(t,
		"11000",
		"11000",
		"00100",
		"00000",
	)
	r, ok := PickRegion(g, geom.C(2, 2), grid.Conn8)
	require.True(t, ok)
	assert.Len(t, r.Cells, 5)
	assert.Equal(t, "(2,2) state 1: 5 cells, 9 border (8-conn)", r.Summary())
}

func TestPickRegionOutside(t *testing.T) {
	g := board(t, "0")
	_, ok := PickRegion(g, geom.C(1, 0), grid.Conn4)
	assert.False(t, ok)
}

func TestMask(t *testing.T) {
	g := board(t,
		"100",
		"000",
	)
	r, ok := PickRegion(g, geom.C(0, 0), grid.Conn4)
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0.5, 0, 0.5, 0.5, 0}, r.Mask(g))
}

func TestHUDLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Life",
		Params: []core.Parameter{core.IntParam("gen", "Generation", 3)},
	}}}
	assert.Equal(t, []string{"Life", "", "Life", "  Generation: 3", "", "picked"}, hudLines("Life", snap, "picked"))
	assert.Equal(t, []string{"T", "No parameters"}, hudLines("T", core.ParameterSnapshot{}, ""))
}

func TestBuildTitle(t *testing.T) {
	sim, err := core.NewCells(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Parameters", buildTitle(nil))
	assert.Equal(t, "Stub", buildTitle(named{cells: sim}))
}

type named struct{ cells *grid.Grid[uint8] }

func (named) Name() string                { return "stub" }
func (named) Size() core.Size             { return core.Size{W: 1, H: 1} }
func (named) Reset(int64)                 {}
func (named) Step()                       {}
func (n named) Cells() *grid.Grid[uint8] { return n.cells }
