package main

import (
	"bytes"
	"image/png"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/internal/app"
	"tapestry/internal/core"
)

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func config(sim string, params ...string) *app.Config {
	cfg := app.NewConfig()
	cfg.Sim = sim
	cfg.Scale = 1
	for _, p := range params {
		_ = cfg.Params.Set(p)
	}
	return cfg
}

func TestRunRingText(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, config("ring", "batch=0"), options{format: "text"}, discard())
	require.NoError(t, err)
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "∙∙∙∙∙∙∙#####∙∙∙∙∙∙∙", lines[2])
	assert.Equal(t, "∙∙∙#////###////#∙∙∙", lines[6])
}

func TestRunOutlineBraille(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, config("outline", "w=12", "h=8"), options{format: "braille"}, discard())
	require.NoError(t, err)
	assert.Equal(t, "⢀⣤⣾⣿⣶⡆\n⠀⠹⣿⡿⠿⠇\n\n", out.String())
}

func TestRunFramesEvery(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, config("elementary", "w=5", "h=2", "rule=0"), options{steps: 4, every: 2, format: "text"}, discard())
	require.NoError(t, err)
	// One frame after step 2 and the final one after step 4.
	assert.Equal(t, ".....\n.....\n\n.....\n.....\n\n", out.String())
}

func TestRunPNG(t *testing.T) {
	var out bytes.Buffer
	cfg := config("dungeon", "w=20", "h=10")
	cfg.Scale = 2
	require.NoError(t, run(&out, cfg, options{format: "png"}, discard()))
	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, config("nope"), options{format: "text"}, discard())
	assert.ErrorIs(t, err, core.ErrUnknownSim)

	err = run(&out, config("ring"), options{format: "svg"}, discard())
	assert.ErrorIs(t, err, errFormat)
}
