//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tapestry/internal/core"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
)

// Overlay highlights the region under a clicked cell on top of the base
// simulation. The region is re-flooded every frame so it follows the sim.
type Overlay struct {
	sim     core.Sim
	scale   int
	enabled bool
	conn    grid.Connectivity

	picked *geom.Coord
	region Region

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: max(scale, 1), enabled: true, conn: grid.Conn4}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles toggles and clicks and refreshes the highlighted region.
// Key 1 toggles the overlay, key 2 switches between 4- and 8-connectivity
// and the right mouse button clears the selection.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.enabled = !o.enabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		if o.conn == grid.Conn4 {
			o.conn = grid.Conn8
		} else {
			o.conn = grid.Conn4
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		o.picked = nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		c := geom.C(int32(mx/o.scale), int32(my/o.scale))
		if o.sim.Cells().Bounds().Contains(c) {
			o.picked = &c
		}
	}
	if o.picked == nil {
		o.region = Region{}
		return
	}
	o.region, _ = PickRegion(o.sim.Cells(), *o.picked, o.conn)
}

// Status summarises the current selection for the HUD.
func (o *Overlay) Status() string {
	if !o.enabled || o.picked == nil {
		return ""
	}
	return o.region.Summary()
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.enabled || o.picked == nil {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	o.drawMask(screen, o.region.Mask(o.sim.Cells()), color.RGBA{R: 64, G: 164, B: 223})
	o.drawCellFrame(screen, o.region.Start, color.RGBA{R: 255, G: 120, B: 40, A: 255})
}

func (o *Overlay) drawCellFrame(screen *ebiten.Image, c geom.Coord, col color.RGBA) {
	s := float64(o.scale)
	x, y := float64(c.X)*s, float64(c.Y)*s
	thickness := math.Max(1, s/6)
	o.drawLine(screen, x, y, x+s, y, thickness, col)
	o.drawLine(screen, x+s, y, x+s, y+s, thickness, col)
	o.drawLine(screen, x+s, y+s, x, y+s, thickness, col)
	o.drawLine(screen, x, y+s, x, y, thickness, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	total := len(o.maskBuf) / 4
	if len(mask) != total {
		return
	}
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)

	for i := 0; i < total; i++ {
		base := i * 4
		intensity := clamp01(float64(mask[i]))
		if intensity == 0 {
			clear(o.maskBuf[base : base+4])
			continue
		}

		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		glow := glowBase + glowRange*math.Sqrt(intensity)

		o.maskBuf[base+0] = scaleColorComponent(tint.R, glow)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, glow)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, glow)
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	return uint8(math.Round(clamp01(float64(value)*factor/255) * 255))
}
