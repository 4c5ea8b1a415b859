package core

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Rect converts s into origin-anchored grid bounds.
func (s Size) Rect() (geom.Rect, error) {
	return geom.NewRect(geom.C(int32(s.W), int32(s.H)))
}

// Sim defines the minimal contract a demo program must implement. Cells
// returns the state that viewers paint; callers must not keep it across Step.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() *grid.Grid[uint8]
}

// Glypher is implemented by sims that know how to draw their states as text.
type Glypher interface {
	Glyph(state uint8) rune
}

// Paletted is implemented by sims with more than two states.
type Paletted interface {
	Palette() []color.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// ErrUnknownSim is returned by New for names nobody registered.
var ErrUnknownSim = errors.New("core: unknown simulation")

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// New builds the simulation registered under name.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSim, name)
	}
	sim, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("sim %s: %w", name, err)
	}
	return sim, nil
}

// Names lists the registered simulations alphabetically.
func Names() []string {
	out := make([]string, 0, len(sims))
	for name := range sims {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Glyph returns the text rune for state, falling back to '#' for any non-zero
// state when the sim has no glyph table of its own.
func Glyph(s Sim, state uint8) rune {
	if g, ok := s.(Glypher); ok {
		return g.Glyph(state)
	}
	if state == 0 {
		return '.'
	}
	return '#'
}

// NewCells allocates an origin-anchored state grid.
func NewCells(w, h int) (*grid.Grid[uint8], error) {
	r, err := Size{W: w, H: h}.Rect()
	if err != nil {
		return nil, err
	}
	return grid.New[uint8](r)
}
