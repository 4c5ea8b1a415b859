package ui

import (
	"fmt"
	"slices"
	"strings"

	"tapestry/internal/core"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
	"tapestry/pkg/pattern"
)

// Region is the connected patch of equal-state cells around Start.
type Region struct {
	Start  geom.Coord
	State  uint8
	Conn   grid.Connectivity
	Cells  []geom.Coord
	Border []geom.Coord
}

// PickRegion floods outwards from at over cells that share its state. The
// border is the ring of in-bounds cells touching the region from outside.
func PickRegion(cells *grid.Grid[uint8], at geom.Coord, conn grid.Connectivity) (Region, bool) {
	state, ok := cells.Get(at)
	if !ok {
		return Region{}, false
	}
	r := Region{Start: at, State: state, Conn: conn}
	for c := range cells.FloodWith(at, func(v uint8) bool { return v == state }, conn) {
		r.Cells = append(r.Cells, c)
	}
	cluster := pattern.NewCluster(slices.Values(r.Cells))
	for c := range cluster.ExternalBorder() {
		if cells.Bounds().Contains(c) {
			r.Border = append(r.Border, c)
		}
	}
	return r, true
}

// Mask rasterises r in the storage order of cells: 1 inside the region, 0.5
// on its border and 0 elsewhere.
func (r Region) Mask(cells *grid.Grid[uint8]) []float32 {
	mask := make([]float32, cells.Len())
	for _, c := range r.Cells {
		if i, ok := cells.CoordToIndex(c); ok {
			mask[i] = 1
		}
	}
	for _, c := range r.Border {
		if i, ok := cells.CoordToIndex(c); ok {
			mask[i] = 0.5
		}
	}
	return mask
}

// Summary describes r in one line.
func (r Region) Summary() string {
	conn := "4"
	if r.Conn == grid.Conn8 {
		conn = "8"
	}
	return fmt.Sprintf("%s state %d: %d cells, %d border (%s-conn)", r.Start, r.State, len(r.Cells), len(r.Border), conn)
}

// hudLines lays out the text of the parameter panel.
func hudLines(title string, snap core.ParameterSnapshot, status string) []string {
	lines := []string{title}
	if len(snap.Groups) == 0 {
		lines = append(lines, "No parameters")
	}
	for _, group := range snap.Groups {
		lines = append(lines, "", group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	if status != "" {
		lines = append(lines, "", status)
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
