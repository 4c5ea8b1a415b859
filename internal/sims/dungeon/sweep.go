package dungeon

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ParamSet is one point of a sweep.
type ParamSet struct {
	MinLeaf int
	MinRoom int
}

func (p ParamSet) String() string {
	return fmt.Sprintf("min=%d room=%d", p.MinLeaf, p.MinRoom)
}

// SweepResult aggregates every seed generated for one ParamSet.
type SweepResult struct {
	Params       ParamSet
	Seeds        int
	MeanRooms    float64
	MeanCoverage float64
	MinCoverage  float64
	MaxCoverage  float64
	MaxDepth     int
}

// Sweep generates layouts for every combination of params and seeds
// [0, seeds) on boards sized like base, running at most workers layouts at
// once. Results are ordered by descending mean coverage.
func Sweep(ctx context.Context, base Config, params []ParamSet, seeds, workers int) ([]SweepResult, error) {
	if seeds <= 0 {
		return nil, fmt.Errorf("dungeon: sweep needs at least one seed, got %d", seeds)
	}
	stats := make([][]Stats, len(params))
	rooms := make([][]int, len(params))
	for i := range params {
		stats[i] = make([]Stats, seeds)
		rooms[i] = make([]int, seeds)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, p := range params {
		for seed := range seeds {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				cfg := base
				cfg.MinLeaf, cfg.MinRoom = p.MinLeaf, p.MinRoom
				d, err := New(cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", p, err)
				}
				s, err := d.Generate(int64(seed))
				if err != nil {
					return fmt.Errorf("%s seed %d: %w", p, seed, err)
				}
				stats[i][seed] = s
				rooms[i][seed] = len(d.Rooms())
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	area := base.Width * base.Height
	out := make([]SweepResult, len(params))
	for i, p := range params {
		res := SweepResult{Params: p, Seeds: seeds, MinCoverage: math.Inf(1)}
		for seed, s := range stats[i] {
			cov := s.Coverage(area)
			res.MeanCoverage += cov
			res.MeanRooms += float64(rooms[i][seed])
			res.MinCoverage = min(res.MinCoverage, cov)
			res.MaxCoverage = max(res.MaxCoverage, cov)
			res.MaxDepth = max(res.MaxDepth, s.Depth)
		}
		res.MeanCoverage /= float64(seeds)
		res.MeanRooms /= float64(seeds)
		out[i] = res
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].MeanCoverage > out[b].MeanCoverage })
	return out, nil
}

// Combinations expands the cartesian product of leaf and room sizes.
func Combinations(leaves, rooms []int) []ParamSet {
	var sets []ParamSet
	for _, l := range leaves {
		for _, r := range rooms {
			sets = append(sets, ParamSet{MinLeaf: l, MinRoom: r})
		}
	}
	return sets
}
