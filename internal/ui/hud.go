//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"tapestry/internal/core"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	return &HUD{sim: sim, width: max(width, 0), title: buildTitle(sim)}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(status string) {
	if h == nil {
		return
	}
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.lines = hudLines(h.title, snap, status)
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for i, line := range h.lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			col = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
)
