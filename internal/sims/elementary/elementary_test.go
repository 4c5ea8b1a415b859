package elementary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/pkg/grid"
)

func glyph(v uint8) rune {
	if v == 1 {
		return '#'
	}
	return '.'
}

func TestRule90ScrollsHistory(t *testing.T) {
	e, err := New(Config{Width: 7, Height: 4, Rule: 90})
	require.NoError(t, err)
	e.Reset(0)
	for range 3 {
		e.Step()
	}
	// Newest generation on top.
	assert.Equal(t,
		"#.#.#.#\n"+
			".#...#.\n"+
			"..#.#..\n"+
			"...#...\n",
		grid.RenderFunc(e.Cells(), glyph))
}

func TestRuleZeroClearsTopRow(t *testing.T) {
	e, err := New(Config{Width: 5, Height: 2, Rule: 0})
	require.NoError(t, err)
	e.Reset(0)
	e.Step()
	assert.Equal(t, ".....\n..#..\n", grid.RenderFunc(e.Cells(), glyph))
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"rule": "30", "w": "9", "random": "true"})
	assert.Equal(t, uint8(30), c.Rule)
	assert.Equal(t, 9, c.Width)
	assert.True(t, c.Random)
	assert.Equal(t, uint8(110), FromMap(map[string]string{"rule": "300"}).Rule)
}

func TestRandomResetDeterministic(t *testing.T) {
	a, err := New(Config{Width: 64, Height: 2, Rule: 30, Random: true})
	require.NoError(t, err)
	b, err := New(Config{Width: 64, Height: 2, Rule: 30, Random: true})
	require.NoError(t, err)
	a.Reset(9)
	b.Reset(9)
	assert.Equal(t, a.Cells().Values(), b.Cells().Values())
}
