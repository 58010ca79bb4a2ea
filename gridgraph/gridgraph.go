// Package gridgraph provides utilities to treat a toroidal 2D grid of
// live/dead cells as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8), always wrapping at the edges
//   - Identification of communities of live cells via union-find
//
// Dead cells never join a community.
package gridgraph

// NewTorusGraph snapshots cells into a TorusGraph.
// Later changes to cells do not affect the returned graph.
// Returns ErrEmptyGrid if cells is nil or has no rows or no columns.
// Algorithmic complexity: O(W×H) time and memory.
func NewTorusGraph(cells Cells, opts Options) (*TorusGraph, error) {
	if cells == nil || cells.Rows() <= 0 || cells.Cols() <= 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := cells.Rows(), cells.Cols()
	alive := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			alive[r*cols+c] = cells.At(r, c)
		}
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	} else {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return &TorusGraph{
		Rows:            rows,
		Cols:            cols,
		Conn:            opts.Conn,
		alive:           alive,
		neighborOffsets: offsets,
	}, nil
}

// NeighborOffsets returns the precomputed {Δrow, Δcol} offsets for tg.Conn.
// Complexity: O(1).
func (tg *TorusGraph) NeighborOffsets() [][2]int {
	return tg.neighborOffsets
}

// Alive reports whether the cell at row-major index idx is alive.
// Out-of-range indices report false.
func (tg *TorusGraph) Alive(idx int) bool {
	return idx >= 0 && idx < len(tg.alive) && tg.alive[idx]
}

// Neighbor returns the index of the cell reached from (row, col) by
// offset d, wrapping across both edges.
// Complexity: O(1).
func (tg *TorusGraph) Neighbor(row, col int, d [2]int) int {
	nr := (row + d[0] + tg.Rows) % tg.Rows
	nc := (col + d[1] + tg.Cols) % tg.Cols

	return tg.Index(nr, nc)
}

// Index maps (row, col) to a row‑major index: row*Cols + col.
// Complexity: O(1).
func (tg *TorusGraph) Index(row, col int) int {
	return row*tg.Cols + col
}

// Coordinate converts a row‑major index back to (row, col).
// Complexity: O(1).
func (tg *TorusGraph) Coordinate(idx int) (row, col int) {
	return idx / tg.Cols, idx % tg.Cols
}
