// Package term runs a simulation inside a terminal.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tapestry/internal/core"
	"tapestry/internal/render"
	"tapestry/pkg/braille"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
)

const frameInterval = 16 * time.Millisecond

// Viewer draws a Sim onto a tcell screen and maps keys to sim controls:
// q/Esc quit, space pauses, n single-steps, r resets with the same seed,
// s reseeds, b toggles braille packing and the arrow keys pan the view.
type Viewer struct {
	screen  tcell.Screen
	sim     core.Sim
	step    *core.FixedStep
	styles  []tcell.Style
	seed    int64
	ticks   int
	paused  bool
	braille bool
	pan     geom.Coord
}

// NewViewer binds sim to an initialised screen.
func NewViewer(screen tcell.Screen, sim core.Sim, tps int, seed int64) *Viewer {
	v := &Viewer{screen: screen, sim: sim, step: core.NewFixedStep(tps), seed: seed}
	for _, c := range render.PaletteFor(sim) {
		v.styles = append(v.styles, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))))
	}
	return v
}

// Reset restarts the sim from seed.
func (v *Viewer) Reset(seed int64) {
	v.seed = seed
	v.ticks = 0
	v.sim.Reset(seed)
}

// Tick advances the sim once if it is running and its step is due.
func (v *Viewer) Tick() {
	if v.paused || !v.step.ShouldStep() {
		return
	}
	v.sim.Step()
	v.ticks++
}

// HandleEvent applies ev and reports whether the viewer should keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.pan = v.pan.Add(geom.North)
		case tcell.KeyDown:
			v.pan = v.pan.Add(geom.South)
		case tcell.KeyLeft:
			v.pan = v.pan.Add(geom.West)
		case tcell.KeyRight:
			v.pan = v.pan.Add(geom.East)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.sim.Step()
				v.ticks++
			case 'r':
				v.Reset(v.seed)
			case 's':
				v.Reset(v.seed + 1)
			case 'b':
				v.braille = !v.braille
			}
		}
		v.clampPan()
	case *tcell.EventResize:
		v.screen.Sync()
		v.clampPan()
	}
	return true
}

// Draw repaints the whole screen. The last row is a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	if v.braille {
		v.drawBraille()
	} else {
		v.drawCells()
	}
	v.drawStatus()
	v.screen.Show()
}

func (v *Viewer) style(state uint8) tcell.Style {
	if len(v.styles) == 0 {
		return tcell.StyleDefault
	}
	return v.styles[min(int(state), len(v.styles)-1)]
}

// columnWidth is the terminal width of the widest glyph the sim can draw.
func (v *Viewer) columnWidth() int {
	w := 1
	for state := range max(len(v.styles), 2) {
		w = max(w, runewidth.RuneWidth(core.Glyph(v.sim, uint8(state))))
	}
	return w
}

func (v *Viewer) drawCells() {
	cells := v.sim.Cells()
	origin := cells.Bounds().Offset().Add(v.pan)
	cw := v.columnWidth()
	sw, sh := v.screen.Size()
	for y := 0; y < sh-1; y++ {
		for x := 0; x*cw < sw; x++ {
			c := origin.Add(geom.C(int32(x), int32(y)))
			state, ok := cells.Get(c)
			if !ok {
				continue
			}
			v.screen.SetContent(x*cw, y, core.Glyph(v.sim, state), nil, v.style(state))
		}
	}
}

func (v *Viewer) drawBraille() {
	bits, err := grid.WithGenerator(v.sim.Cells().Bounds(), func(c geom.Coord) bool {
		state, _ := v.sim.Cells().Get(c)
		return state != 0
	})
	if err != nil {
		return
	}
	glyphs, err := braille.Encode(bits)
	if err != nil {
		v.putString(0, 0, err.Error(), tcell.StyleDefault)
		return
	}
	_, sh := v.screen.Size()
	style := v.style(1)
	for c, r := range glyphs.All() {
		p := c.Sub(v.pan)
		if p.X < 0 || p.Y < 0 || int(p.Y) >= sh-1 {
			continue
		}
		v.screen.SetContent(int(p.X), int(p.Y), r, nil, style)
	}
}

func (v *Viewer) drawStatus() {
	_, sh := v.screen.Size()
	state := "running"
	if v.paused {
		state = "paused"
	}
	status := fmt.Sprintf(" %s  seed=%d  tick=%d  %s  [space] pause [n] step [r] reset [s] reseed [b] braille [q] quit",
		v.sim.Name(), v.seed, v.ticks, state)
	v.putString(0, sh-1, status, tcell.StyleDefault.Reverse(true))
}

func (v *Viewer) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (v *Viewer) clampPan() {
	dims := v.sim.Cells().Bounds().Dimensions()
	v.pan.X = max(0, min(v.pan.X, dims.X-1))
	v.pan.Y = max(0, min(v.pan.Y, dims.Y-1))
}

// Run polls events and redraws until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}
