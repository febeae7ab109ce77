package sandpile

import "errors"

var (
	// ErrInvalidDimensions indicates grid bounds that do not contain the origin.
	ErrInvalidDimensions = errors.New("sandpile: invalid dimensions, bounds must include the origin")
	// ErrOutOfBounds indicates a coordinate with no cell in the current grid.
	ErrOutOfBounds = errors.New("sandpile: coordinates out of bounds")
)
