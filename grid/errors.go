package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates an unknown cell glyph in textual input.
	ErrInvalidCell = errors.New("grid: invalid cell glyph")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of range")
)
