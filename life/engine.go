package life

// offsets lists the eight neighbor displacements as {Δrow, Δcol}.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Engine holds one generation of a toroidal Game of Life and advances it.
// The zero value is not usable; construct with NewEngine or NewDefaultEngine.
// An Engine is not safe for concurrent use.
type Engine struct {
	grid       *Grid
	aliveCount int
	generation int
}

// NewEngine returns an Engine seeded with a copy of g.
// The caller keeps ownership of g; later changes to it do not reach the engine.
// Complexity: O(R×C).
func NewEngine(g *Grid) *Engine {
	seed := g.Clone()

	return &Engine{grid: seed, aliveCount: seed.Alive()}
}

// NewDefaultEngine returns an Engine seeded with DefaultPattern.
func NewDefaultEngine() *Engine {
	g := DefaultPattern()

	return &Engine{grid: g, aliveCount: g.Alive()}
}

// DefaultPattern returns the 5×5 seed with live cells at
// (1,1), (1,3), (2,2), (3,2) and (3,3). It dies out after four generations.
func DefaultPattern() *Grid {
	g := &Grid{rows: 5, cols: 5, cells: make([]bool, 25)}
	for _, rc := range [][2]int{{1, 1}, {1, 3}, {2, 2}, {3, 2}, {3, 3}} {
		g.cells[g.index(rc[0], rc[1])] = Alive
	}

	return g
}

// Rows returns the number of grid rows.
func (e *Engine) Rows() int { return e.grid.rows }

// Cols returns the number of grid columns.
func (e *Engine) Cols() int { return e.grid.cols }

// Grid returns a snapshot of the current generation.
func (e *Engine) Grid() *Grid { return e.grid.Clone() }

// AliveCount returns the number of live cells in the current generation.
// Complexity: O(1).
func (e *Engine) AliveCount() int { return e.aliveCount }

// Generation returns how many generations have been applied since construction.
func (e *Engine) Generation() int { return e.generation }

// IsAlive reports whether any cell of the current generation is alive.
// Complexity: O(1).
func (e *Engine) IsAlive() bool { return e.aliveCount > 0 }

// CellState returns the state of (row, col). Indices outside the grid
// report Dead rather than an error.
func (e *Engine) CellState(row, col int) bool {
	return e.grid.At(row, col)
}

// At reports the state of (row, col) like CellState. It lets an Engine be
// read directly as a grid view (Rows, Cols, At) without taking a snapshot.
func (e *Engine) At(row, col int) bool {
	return e.grid.At(row, col)
}

// NeighborCount returns how many of the eight wrapped neighbors of (row, col)
// are alive. On grids narrower than three cells several offsets can land on
// the same cell; each offset is counted on its own.
// (row, col) must be in range.
// Complexity: O(1).
func (e *Engine) NeighborCount(row, col int) int {
	return neighborCount(e.grid, row, col)
}

// Step computes the next generation into a new Grid and returns it.
// The engine state is left untouched.
// Complexity: O(R×C) time and memory.
func (e *Engine) Step() *Grid {
	next, _ := step(e.grid)

	return next
}

// Advance replaces the current generation with Step's result and
// refreshes the alive total.
func (e *Engine) Advance() {
	next, alive := step(e.grid)
	e.grid = next
	e.aliveCount = alive
	e.generation++
}

// AdvanceN applies Advance n times. n ≤ 0 leaves the engine unchanged.
// Complexity: O(n×R×C).
func (e *Engine) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		e.Advance()
	}
}

// step applies the rule table to every cell of cur and returns the new
// grid together with its alive total. It reads only cur.
func step(cur *Grid) (*Grid, int) {
	next := &Grid{rows: cur.rows, cols: cur.cols, cells: make([]bool, len(cur.cells))}
	alive := 0
	for r := 0; r < cur.rows; r++ {
		for c := 0; c < cur.cols; c++ {
			i := cur.index(r, c)
			n := neighborCount(cur, r, c)
			var state bool
			if cur.cells[i] {
				state = n == 2 || n == 3
			} else {
				state = n == 3
			}
			next.cells[i] = state
			if state {
				alive++
			}
		}
	}

	return next, alive
}

func neighborCount(g *Grid, row, col int) int {
	n := 0
	for _, d := range offsets {
		nr := (row + d[0] + g.rows) % g.rows
		nc := (col + d[1] + g.cols) % g.cols
		if g.cells[g.index(nr, nc)] {
			n++
		}
	}

	return n
}
