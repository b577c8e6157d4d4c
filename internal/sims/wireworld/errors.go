package wireworld

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for positions outside the grid.
	ErrOutOfBounds = errors.New("wireworld: position out of bounds")
	// ErrConfiguration is returned when a grid cannot be constructed from
	// the supplied settings.
	ErrConfiguration = errors.New("wireworld: invalid configuration")
)

// BoundsError records the offending position and the grid bounds.
type BoundsError struct {
	Pos     Position
	Rows    int
	Columns int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("wireworld: position %v outside %dx%d grid", e.Pos, e.Rows, e.Columns)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
