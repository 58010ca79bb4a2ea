// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/lvlife.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cells is the read-only grid view a TorusGraph is built from.
// At must report whether (row, col) is alive for every in-range position.
type Cells interface {
	Rows() int
	Cols() int
	At(row, col int) bool
}

// Options contains tunable parameters for grid analysis.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn=Conn8, the adjacency rule the
// Game of Life itself uses.
func DefaultOptions() Options {
	return Options{Conn: Conn8}
}

// TorusGraph is an immutable snapshot of a grid seen as a graph whose edges
// wrap around both axes. Rows and Cols define dimensions; alive[row*Cols+col]
// holds the cell state copied at construction.
type TorusGraph struct {
	Rows, Cols      int
	Conn            Connectivity
	alive           []bool
	neighborOffsets [][2]int
}
