package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input grid is nil or has no rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
)
