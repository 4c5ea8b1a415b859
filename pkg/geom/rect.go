package geom

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrEmptyRect is returned when a Rect would have a non-positive width or height.
	ErrEmptyRect = errors.New("geom: rect must have positive width and height")
	// ErrPartitionOffset is returned when a partition offset does not fall strictly inside the rect.
	ErrPartitionOffset = errors.New("geom: partition offset out of range")
)

// Rect is an axis-aligned region. Left and Top are inclusive, Right and
// Bottom are exclusive, and Top is the minimum Y.
type Rect struct {
	Top, Bottom, Left, Right int32
}

// NewRect returns a Rect anchored at the origin with the given dimensions.
func NewRect(dimensions Coord) (Rect, error) {
	return WithCorners(Origin, dimensions)
}

// WithCorners builds a Rect from any two opposite corners, sorting them so
// that Top <= Bottom and Left <= Right.
func WithCorners(a, b Coord) (Rect, error) {
	r := Rect{
		Top:    min(a.Y, b.Y),
		Bottom: max(a.Y, b.Y),
		Left:   min(a.X, b.X),
		Right:  max(a.X, b.X),
	}
	if err := r.Validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// Validate reports ErrEmptyRect for rects with no cells.
func (r Rect) Validate() error {
	if r.Width() <= 0 || r.Height() <= 0 {
		return fmt.Errorf("%w: %s", ErrEmptyRect, r)
	}
	return nil
}

// Width returns Right - Left.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Area returns the number of cells covered by r.
func (r Rect) Area() int {
	if r.Width() <= 0 || r.Height() <= 0 {
		return 0
	}
	return int(r.Width()) * int(r.Height())
}

// Dimensions returns (Width, Height).
func (r Rect) Dimensions() Coord { return Coord{r.Width(), r.Height()} }

// Offset returns the top-left corner.
func (r Rect) Offset() Coord { return Coord{r.Left, r.Top} }

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Left && c.X < r.Right && c.Y >= r.Top && c.Y < r.Bottom
}

// Translate shifts r by d.
func (r Rect) Translate(d Coord) Rect {
	return Rect{
		Top:    r.Top + d.Y,
		Bottom: r.Bottom + d.Y,
		Left:   r.Left + d.X,
		Right:  r.Right + d.X,
	}
}

// Inset shrinks r by n cells on every side. The result may be empty; callers
// check Validate before allocating storage over it.
func (r Rect) Inset(n int32) Rect {
	return Rect{Top: r.Top + n, Bottom: r.Bottom - n, Left: r.Left + n, Right: r.Right - n}
}

// PartitionHorizontal cuts r into a left and a right part at Left+offset.
func (r Rect) PartitionHorizontal(offset int32) (left, right Rect, err error) {
	if offset <= 0 || offset >= r.Width() {
		return Rect{}, Rect{}, fmt.Errorf("%w: horizontal %d of %s", ErrPartitionOffset, offset, r)
	}
	cut := r.Left + offset
	left, right = r, r
	left.Right = cut
	right.Left = cut
	return left, right, nil
}

// PartitionVertical cuts r into a top and a bottom part at Top+offset.
func (r Rect) PartitionVertical(offset int32) (top, bottom Rect, err error) {
	if offset <= 0 || offset >= r.Height() {
		return Rect{}, Rect{}, fmt.Errorf("%w: vertical %d of %s", ErrPartitionOffset, offset, r)
	}
	cut := r.Top + offset
	top, bottom = r, r
	top.Bottom = cut
	bottom.Top = cut
	return top, bottom, nil
}

// Iter yields every coordinate in r row by row, from the top-left corner to
// the bottom-right one.
func (r Rect) Iter() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for y := r.Top; y < r.Bottom; y++ {
			for x := r.Left; x < r.Right; x++ {
				if !yield(Coord{x, y}) {
					return
				}
			}
		}
	}
}

// Coords collects Iter into a slice.
func (r Rect) Coords() []Coord {
	out := make([]Coord, 0, r.Area())
	for c := range r.Iter() {
		out = append(out, c)
	}
	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.Left, r.Right, r.Top, r.Bottom)
}
