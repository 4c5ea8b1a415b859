package geom

import (
	"fmt"
	"math/rand/v2"
)

// Orientation selects the axis a BSP node is cut along. A Horizontal split
// produces a left and a right child; a Vertical split a top and a bottom one.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Orthogonal returns the other orientation.
func (o Orientation) Orthogonal() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Splitter decides how a BSP node is divided. Returning ok=false turns the
// rect into a leaf; otherwise it is partitioned at offset along o and both
// children are split further using next.
type Splitter func(r Rect, o Orientation) (offset int32, next Orientation, ok bool)

// BSPTree is a node of a binary space partition. Leaves have nil children.
type BSPTree struct {
	Rect        Rect
	Left, Right *BSPTree
}

// BSP recursively partitions r. Every partition must lie strictly inside the
// node being cut, so each level shrinks and the recursion always terminates;
// a splitter that returns an out-of-range offset aborts with
// ErrPartitionOffset.
func (r Rect) BSP(o Orientation, split Splitter) (*BSPTree, error) {
	offset, next, ok := split(r, o)
	if !ok {
		return &BSPTree{Rect: r}, nil
	}
	var (
		a, b Rect
		err  error
	)
	if o == Horizontal {
		a, b, err = r.PartitionHorizontal(offset)
	} else {
		a, b, err = r.PartitionVertical(offset)
	}
	if err != nil {
		return nil, fmt.Errorf("bsp %s: %w", o, err)
	}
	left, err := a.BSP(next, split)
	if err != nil {
		return nil, err
	}
	right, err := b.BSP(next, split)
	if err != nil {
		return nil, err
	}
	return &BSPTree{Rect: r, Left: left, Right: right}, nil
}

// IsLeaf reports whether t has no children.
func (t *BSPTree) IsLeaf() bool { return t.Left == nil && t.Right == nil }

// Leaves returns the leaf rects in left-to-right, depth-first order.
func (t *BSPTree) Leaves() []Rect {
	var out []Rect
	t.Walk(func(n *BSPTree, _ int) bool {
		if n.IsLeaf() {
			out = append(out, n.Rect)
		}
		return true
	})
	return out
}

// Depth returns the number of levels below and including t.
func (t *BSPTree) Depth() int {
	if t.IsLeaf() {
		return 1
	}
	return 1 + max(t.Left.Depth(), t.Right.Depth())
}

// Walk visits t in pre-order. Returning false from fn skips the children of
// the current node.
func (t *BSPTree) Walk(fn func(n *BSPTree, depth int) bool) {
	t.walk(fn, 0)
}

func (t *BSPTree) walk(fn func(*BSPTree, int) bool, depth int) {
	if !fn(t, depth) || t.IsLeaf() {
		return
	}
	t.Left.walk(fn, depth+1)
	t.Right.walk(fn, depth+1)
}

func span(r Rect, o Orientation) int32 {
	if o == Horizontal {
		return r.Width()
	}
	return r.Height()
}

// BisectSplitter halves each node along alternating axes until a half would
// be smaller than minSize.
func BisectSplitter(minSize int32) Splitter {
	if minSize < 1 {
		minSize = 1
	}
	return func(r Rect, o Orientation) (int32, Orientation, bool) {
		half := span(r, o) / 2
		if half < minSize {
			return 0, o, false
		}
		return half, o.Orthogonal(), true
	}
}

// RandomSplitter cuts each node at a uniformly chosen offset that keeps both
// children at least minSize wide, alternating axes. A node stops splitting
// once its span minus 2*minSize is no longer positive.
func RandomSplitter(rng *rand.Rand, minSize int32) Splitter {
	if minSize < 1 {
		minSize = 1
	}
	return func(r Rect, o Orientation) (int32, Orientation, bool) {
		room := span(r, o) - 2*minSize
		if room <= 0 {
			return 0, o, false
		}
		return minSize + rng.Int32N(room+1), o.Orthogonal(), true
	}
}
