package outline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/pkg/geom"
)

func countSet(o *Outline) int {
	n := 0
	for _, v := range o.Bits().All() {
		if v {
			n++
		}
	}
	return n
}

func TestOutlineAndFill(t *testing.T) {
	o, err := New(Config{Width: 60, Height: 50})
	require.NoError(t, err)
	o.Reset(0)
	// Five closed segments share their vertices.
	assert.Equal(t, 132, countSet(o))
	for _, v := range o.Vertices() {
		set, _ := o.Bits().Get(v)
		assert.True(t, set, v.String())
	}

	filled, err := New(DefaultConfig())
	require.NoError(t, err)
	filled.Reset(0)
	assert.Equal(t, 1471, countSet(filled))

	state, _ := filled.Cells().Get(geom.C(32, 32))
	assert.Equal(t, uint8(1), state)
	state, _ = filled.Cells().Get(geom.C(0, 0))
	assert.Equal(t, uint8(0), state)
}

func TestBrailleSmallBoard(t *testing.T) {
	o, err := New(Config{Width: 12, Height: 8, Fill: true})
	require.NoError(t, err)
	assert.Equal(t, []geom.Coord{
		geom.C(5, 0), geom.C(10, 1), geom.C(10, 6), geom.C(4, 7), geom.C(1, 3),
	}, o.Vertices())

	o.Reset(0)
	text, err := o.Braille()
	require.NoError(t, err)
	assert.Equal(t, "⢀⣤⣾⣿⣶⡆\n⠀⠹⣿⡿⠿⠇\n", text)
}

func TestBrailleDimensions(t *testing.T) {
	o, err := New(DefaultConfig())
	require.NoError(t, err)
	o.Reset(0)
	text, err := o.Braille()
	require.NoError(t, err)

	lines := 0
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		assert.Len(t, []rune(line), 30)
		lines++
	}
	assert.Equal(t, 12, lines)
}

func TestFromMapClampsToOneBlock(t *testing.T) {
	c := FromMap(map[string]string{"w": "1", "h": "2", "fill": "false"})
	assert.Equal(t, 60, c.Width)
	assert.Equal(t, 50, c.Height)
	assert.False(t, c.Fill)
}
