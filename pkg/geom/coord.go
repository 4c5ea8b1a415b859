package geom

import "fmt"

// Coord identifies a single grid cell. Y grows downward, so North is -Y.
type Coord struct {
	X, Y int32
}

// Unit steps used to build neighborhoods without recomputing offsets.
var (
	Origin    = Coord{0, 0}
	North     = Coord{0, -1}
	NorthEast = Coord{1, -1}
	East      = Coord{1, 0}
	SouthEast = Coord{1, 1}
	South     = Coord{0, 1}
	SouthWest = Coord{-1, 1}
	West      = Coord{-1, 0}
	NorthWest = Coord{-1, -1}
)

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int32) Coord { return Coord{X: x, Y: y} }

// Add returns c + o.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// Mul multiplies component-wise.
func (c Coord) Mul(o Coord) Coord { return Coord{c.X * o.X, c.Y * o.Y} }

// Flip reflects c across the main diagonal by swapping X and Y.
func (c Coord) Flip() Coord { return Coord{c.Y, c.X} }

// Negate reflects c through the origin.
func (c Coord) Negate() Coord { return Coord{-c.X, -c.Y} }

// NegateX reflects c across the Y axis.
func (c Coord) NegateX() Coord { return Coord{-c.X, c.Y} }

// NegateY reflects c across the X axis.
func (c Coord) NegateY() Coord { return Coord{c.X, -c.Y} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }
