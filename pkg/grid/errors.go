package grid

import (
	"errors"
	"fmt"

	"tapestry/pkg/geom"
)

var (
	// ErrInvalidBounds is returned when a Grid is constructed over an empty Rect.
	ErrInvalidBounds = errors.New("grid: invalid bounds")
	// ErrOutOfBounds marks a selected coordinate that has no backing cell.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrAlreadyVisited marks a coordinate already handed out by the same SelectMut pass.
	ErrAlreadyVisited = errors.New("grid: coordinate already visited")
)

// CoordError reports a per-coordinate iteration failure. Err is one of
// ErrOutOfBounds or ErrAlreadyVisited.
type CoordError struct {
	Coord geom.Coord
	Err   error
}

func (e *CoordError) Error() string { return fmt.Sprintf("%v at %s", e.Err, e.Coord) }

func (e *CoordError) Unwrap() error { return e.Err }

func outOfBounds(c geom.Coord) error { return &CoordError{Coord: c, Err: ErrOutOfBounds} }

func alreadyVisited(c geom.Coord) error { return &CoordError{Coord: c, Err: ErrAlreadyVisited} }
