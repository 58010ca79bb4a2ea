package pattern

import "errors"

var (
	// ErrSyntax indicates a token that is neither a number nor a boolean where one was expected.
	ErrSyntax = errors.New("pattern: syntax error")
	// ErrDimensions indicates missing, non-positive or inconsistent rows/cols.
	ErrDimensions = errors.New("pattern: invalid dimensions")
	// ErrCellCount indicates the number of cell values does not match rows×cols.
	ErrCellCount = errors.New("pattern: cell count does not match dimensions")
	// ErrCoordinate indicates a live cell listed outside the grid.
	ErrCoordinate = errors.New("pattern: coordinate out of range")
	// ErrUnknownFormat indicates a file extension with no decoder.
	ErrUnknownFormat = errors.New("pattern: unknown format")
)
