package life

import (
	"fmt"
	"strings"
)

const (
	// Alive marks a live cell.
	Alive = true
	// Dead marks a dead cell.
	Dead = false
)

// Grid is a rows×cols rectangle of cells in row-major order.
// The cell at (row, col) lives at cells[row*cols+col].
// Rows and Cols are fixed once the Grid is built.
type Grid struct {
	rows, cols int
	cells      []bool
}

// NewGrid returns an all-dead rows×cols grid.
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}, nil
}

// FromCells builds a grid from a row-major sequence of exactly rows×cols flags.
// The input is copied; later changes to cells do not affect the grid.
// Returns ErrEmptyGrid for non-positive dimensions and ErrCellCount on a length mismatch.
func FromCells(rows, cols int, cells []bool) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrCellCount, len(cells), rows, cols)
	}
	copy(g.cells, cells)

	return g, nil
}

// From2D builds a grid from a non-empty, rectangular 2D slice indexed [row][col].
// It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]bool) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	for r, row := range values {
		copy(g.cells[r*cols:(r+1)*cols], row)
	}

	return g, nil
}

// Rows returns the number of rows; 0 for a nil grid.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Cols returns the number of columns; 0 for a nil grid.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// InBounds reports whether (row, col) lies within the grid.
// A nil grid has no cells in bounds.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return g != nil && row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the state of (row, col), or Dead when the position is out of range.
func (g *Grid) At(row, col int) bool {
	if !g.InBounds(row, col) {
		return Dead
	}

	return g.cells[g.index(row, col)]
}

// Set assigns the state of (row, col). Out-of-range positions are ignored.
// Set is meant for building seed grids; an Engine never exposes its own
// Grid for mutation.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[g.index(row, col)] = alive
}

// Alive returns the number of live cells; 0 for a nil grid.
// Complexity: O(R×C).
func (g *Grid) Alive() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}

	return n
}

// Cells returns a row-major copy of the cell flags.
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.cells))
	copy(out, g.cells)

	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: g.Cells()}
}

// Equal reports whether g and other have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}

	return true
}

// String renders the grid one row per line, '#' for alive and '.' for dead.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for _, c := range g.cells[r*g.cols : (r+1)*g.cols] {
			if c {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (row, col) to its row-major offset: row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}
