package pattern

import (
	"iter"

	"tapestry/pkg/geom"
)

// Cluster is an unordered set of coordinates classified into boundary layers
// using 8-connectivity. Iteration order follows first insertion so results
// are reproducible.
type Cluster struct {
	order []geom.Coord
	set   map[geom.Coord]struct{}
}

// NewCluster collects coords into a Cluster, ignoring repeats.
func NewCluster(coords iter.Seq[geom.Coord]) *Cluster {
	cl := &Cluster{set: make(map[geom.Coord]struct{})}
	for c := range coords {
		if _, ok := cl.set[c]; ok {
			continue
		}
		cl.set[c] = struct{}{}
		cl.order = append(cl.order, c)
	}
	return cl
}

// Len returns the number of distinct members.
func (cl *Cluster) Len() int { return len(cl.order) }

// Contains reports whether c is a member.
func (cl *Cluster) Contains(c geom.Coord) bool {
	_, ok := cl.set[c]
	return ok
}

// Members yields every member in insertion order.
func (cl *Cluster) Members() iter.Seq[geom.Coord] {
	return func(yield func(geom.Coord) bool) {
		for _, c := range cl.order {
			if !yield(c) {
				return
			}
		}
	}
}

func (cl *Cluster) onBorder(c geom.Coord) bool {
	for n := range Moore(c) {
		if !cl.Contains(n) {
			return true
		}
	}
	return false
}

// Interior yields members whose whole Moore neighborhood is inside the cluster.
func (cl *Cluster) Interior() iter.Seq[geom.Coord] {
	return func(yield func(geom.Coord) bool) {
		for _, c := range cl.order {
			if !cl.onBorder(c) && !yield(c) {
				return
			}
		}
	}
}

// InternalBorder yields members with at least one neighbor outside the cluster.
func (cl *Cluster) InternalBorder() iter.Seq[geom.Coord] {
	return func(yield func(geom.Coord) bool) {
		for _, c := range cl.order {
			if cl.onBorder(c) && !yield(c) {
				return
			}
		}
	}
}

// ExternalBorder yields non-members adjacent to at least one member, each
// once, in discovery order.
func (cl *Cluster) ExternalBorder() iter.Seq[geom.Coord] {
	return func(yield func(geom.Coord) bool) {
		found := make(map[geom.Coord]struct{})
		for _, c := range cl.order {
			for n := range Moore(c) {
				if cl.Contains(n) {
					continue
				}
				if _, dup := found[n]; dup {
					continue
				}
				found[n] = struct{}{}
				if !yield(n) {
					return
				}
			}
		}
	}
}

// Layers is the full classification of a cluster.
type Layers struct {
	Interior       []geom.Coord
	InternalBorder []geom.Coord
	ExternalBorder []geom.Coord
}

// ClusterLayers classifies coords in one call.
func ClusterLayers(coords iter.Seq[geom.Coord]) Layers {
	cl := NewCluster(coords)
	var l Layers
	for _, c := range cl.order {
		if cl.onBorder(c) {
			l.InternalBorder = append(l.InternalBorder, c)
		} else {
			l.Interior = append(l.Interior, c)
		}
	}
	for c := range cl.ExternalBorder() {
		l.ExternalBorder = append(l.ExternalBorder, c)
	}
	return l
}
