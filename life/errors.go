package life

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("life: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("life: all rows must have the same length")
	// ErrCellCount indicates a flat cell slice whose length is not rows×cols.
	ErrCellCount = errors.New("life: cell count does not match rows×cols")
)
