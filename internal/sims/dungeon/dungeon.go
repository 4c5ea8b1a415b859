// Package dungeon carves rooms out of a BSP partition of the board.
package dungeon

import (
	"fmt"
	"image/color"
	"slices"

	"tapestry/internal/core"
	"tapestry/pkg/geom"
	"tapestry/pkg/grid"
	"tapestry/pkg/pattern"
)

// Cell states.
const (
	Void  uint8 = 0
	Wall  uint8 = 1
	Floor uint8 = 2
)

// Config holds parameters for the dungeon generator.
type Config struct {
	Width  int
	Height int
	// MinLeaf is the smallest distance a partition may get to a leaf's edge.
	MinLeaf int
	// MinRoom bounds how far a room may be shrunk inside its leaf.
	MinRoom int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, MinLeaf: 8, MinRoom: 4}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.MapInt(cfg, "w", c.Width, 1)
	c.Height = core.MapInt(cfg, "h", c.Height, 1)
	c.MinLeaf = core.MapInt(cfg, "min", c.MinLeaf, 1)
	c.MinRoom = core.MapInt(cfg, "room", c.MinRoom, 1)
	return c
}

// Stats summarises one generated layout.
type Stats struct {
	Leaves int
	Depth  int
	Floor  int
	Wall   int
}

// Coverage is the fraction of the board that became floor.
func (s Stats) Coverage(area int) float64 {
	if area <= 0 {
		return 0
	}
	return float64(s.Floor) / float64(area)
}

// Dungeon regenerates a layout on every Reset. Step is a no-op.
type Dungeon struct {
	cfg   Config
	cells *grid.Grid[uint8]
	rooms []geom.Rect
	stats Stats
}

// New allocates an empty dungeon for cfg.
func New(cfg Config) (*Dungeon, error) {
	cells, err := core.NewCells(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Dungeon{cfg: cfg, cells: cells}, nil
}

// Name returns the simulation identifier.
func (d *Dungeon) Name() string { return "dungeon" }

// Size returns the grid dimensions.
func (d *Dungeon) Size() core.Size { return core.Size{W: d.cfg.Width, H: d.cfg.Height} }

// Cells exposes the layout.
func (d *Dungeon) Cells() *grid.Grid[uint8] { return d.cells }

// Step does nothing; layouts only change on Reset.
func (d *Dungeon) Step() {}

// Reset carves a new layout from seed.
func (d *Dungeon) Reset(seed int64) {
	if _, err := d.Generate(seed); err != nil {
		grid.Logger().Warn("dungeon: generate failed", "seed", seed, "err", err)
	}
}

// Rooms returns the room rects carved by the last Generate.
func (d *Dungeon) Rooms() []geom.Rect { return d.rooms }

// Stats returns the summary of the last Generate.
func (d *Dungeon) Stats() Stats { return d.stats }

// Generate partitions the board with a seeded BSP, places one randomly shrunk
// room per leaf and paints the union of all rooms: its interior becomes
// Floor and its internal border Wall.
func (d *Dungeon) Generate(seed int64) (Stats, error) {
	rng := core.NewRNG(seed)
	d.cells.Fill(Void)
	d.rooms = d.rooms[:0]

	tree, err := d.cells.Bounds().BSP(geom.Horizontal, geom.RandomSplitter(rng.Source(), int32(d.cfg.MinLeaf)))
	if err != nil {
		return Stats{}, fmt.Errorf("dungeon: %w", err)
	}
	leaves := tree.Leaves()
	for _, leaf := range leaves {
		// Keep a one-cell gutter on the top and left so neighbouring rooms
		// never share a wall.
		room := leaf
		room.Left++
		room.Top++
		room = shrinkRandomly(rng, room, int32(d.cfg.MinRoom))
		if room.Validate() != nil {
			continue
		}
		d.rooms = append(d.rooms, room)
	}

	layers := pattern.ClusterLayers(d.roomCoords)
	stats := Stats{Leaves: len(leaves), Depth: tree.Depth()}
	stats.Floor = d.cells.SetAll(slices.Values(layers.Interior), Floor)
	stats.Wall = d.cells.SetAll(slices.Values(layers.InternalBorder), Wall)
	d.stats = stats
	grid.Logger().Debug("dungeon: generated", "seed", seed, "rooms", len(d.rooms), "floor", stats.Floor)
	return stats, nil
}

func (d *Dungeon) roomCoords(yield func(geom.Coord) bool) {
	for _, r := range d.rooms {
		for c := range r.Iter() {
			if !yield(c) {
				return
			}
		}
	}
}

// shrinkRandomly trims a random amount off the right and bottom of r, never
// below minDim, then slides the result by a random offset inside the slack.
// Rects already at or below minDim are returned unchanged.
func shrinkRandomly(rng *core.RNG, r geom.Rect, minDim int32) geom.Rect {
	if minDim >= r.Width() || minDim >= r.Height() {
		return r
	}
	src := rng.Source()
	dx := src.Int32N(r.Width() - minDim)
	dy := src.Int32N(r.Height() - minDim)
	var nx, ny int32
	if dx > 0 {
		nx = src.Int32N(dx)
	}
	if dy > 0 {
		ny = src.Int32N(dy)
	}
	r.Right -= dx
	r.Bottom -= dy
	return r.Translate(geom.C(nx, ny))
}

// Glyph draws walls and floors.
func (d *Dungeon) Glyph(state uint8) rune {
	switch state {
	case Wall:
		return '■'
	case Floor:
		return '∙'
	}
	return ' '
}

// Palette colours void, wall and floor cells.
func (d *Dungeon) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 8, G: 8, B: 12, A: 255},
		{R: 120, G: 110, B: 100, A: 255},
		{R: 200, G: 190, B: 160, A: 255},
	}
}

// Parameters reports the last layout's statistics.
func (d *Dungeon) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Dungeon",
		Params: []core.Parameter{
			core.IntParam("leaves", "Leaves", d.stats.Leaves),
			core.IntParam("rooms", "Rooms", len(d.rooms)),
			core.IntParam("depth", "BSP depth", d.stats.Depth),
			core.FloatParam("coverage", "Floor coverage", d.stats.Coverage(d.cells.Len())),
		},
	}}}
}

func init() {
	core.Register("dungeon", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
