// File: gridgraph/components_test.go
package gridgraph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boolGrid is a minimal Cells implementation for package-internal tests.
type boolGrid [][]bool

func (g boolGrid) Rows() int            { return len(g) }
func (g boolGrid) Cols() int            { return len(g[0]) }
func (g boolGrid) At(row, col int) bool { return g[row][col] }

// parse turns '#'/'.' rows into a boolGrid.
func parse(rows ...string) boolGrid {
	g := make(boolGrid, len(rows))
	for r, line := range rows {
		g[r] = make([]bool, len(line))
		for c, ch := range line {
			g[r][c] = ch == '#'
		}
	}
	return g
}

// sized returns an all-dead rows×cols grid with the given cells alive.
func sized(rows, cols int, alive ...[2]int) boolGrid {
	g := make(boolGrid, rows)
	for r := range g {
		g[r] = make([]bool, cols)
	}
	for _, rc := range alive {
		g[rc[0]][rc[1]] = true
	}
	return g
}

// TestCountCommunities_Cases covers the empty grid, wrap-only adjacency
// and isolated cells.
func TestCountCommunities_Cases(t *testing.T) {
	cases := []struct {
		name string
		grid boolGrid
		want int
	}{
		{"AllDead", sized(4, 4), 0},
		{"SingleCell", sized(1, 1, [2]int{0, 0}), 1},
		{"Saturated2x2", parse("##", "##"), 1},
		{"CornersWrap", sized(5, 6, [2]int{0, 0}, [2]int{4, 5}), 1},
		{"RowWrap", sized(6, 6, [2]int{0, 3}, [2]int{5, 3}), 1},
		{"ColWrap", sized(6, 6, [2]int{2, 0}, [2]int{3, 5}), 1},
		{"FarApart", sized(10, 10, [2]int{0, 0}, [2]int{5, 5}), 2},
		{"Diagonal", parse("#..", ".#.", "..."), 1},
		{"TwoColumnsApart", parse("#.#.", "#.#.", "#.#.", "#.#."), 2},
		{"TwoColumnsWrapped", parse("#.#", "#.#", "#.#"), 1},
		{"DefaultSeed", parse(".....", ".#.#.", "..#..", "..##.", "....."), 1},
		{"FourBlocks", parse(
			"##...##...",
			"##...##...",
			"..........",
			"..........",
			"##...##...",
			"##...##...",
			"..........",
			"..........",
		), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CountCommunities(tc.grid))
		})
	}
}

// TestCountCommunities_Empty verifies degenerate inputs report zero.
func TestCountCommunities_Empty(t *testing.T) {
	assert.Equal(t, 0, CountCommunities(nil))
	assert.Equal(t, 0, CountCommunities(boolGrid{}))
	assert.Equal(t, 0, CountCommunities(boolGrid{{}}))
}

// TestCommunities_Conn4Wrap uses orthogonal connectivity on a 3×4 grid
// whose two islands touch only through the top/bottom seam.
//
// Grid:
//
//	. # # .
//	# # . .
//	. . # #
//
// Without wrap there would be 2 islands; (2,2) touches (0,2) across the seam.
func TestCommunities_Conn4Wrap(t *testing.T) {
	tg, err := NewTorusGraph(parse(".##.", "##..", "..##"), Options{Conn: Conn4})
	require.NoError(t, err)

	comps := tg.Communities()
	require.Len(t, comps, 1)
	assert.Equal(t, []int{1, 2, 4, 5, 10, 11}, comps[0])
	assert.Equal(t, 1, tg.CountCommunities())
}

// TestCommunities_Conn4Diagonal shows that diagonal contact does not join
// cells under Conn4 but does under Conn8.
func TestCommunities_Conn4Diagonal(t *testing.T) {
	g := parse("#...", ".#..", "....", "....")

	tg4, err := NewTorusGraph(g, Options{Conn: Conn4})
	require.NoError(t, err)
	assert.Equal(t, 2, tg4.CountCommunities())

	tg8, err := NewTorusGraph(g, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, tg8.CountCommunities())
}

// TestCommunities_Order checks member and community ordering.
func TestCommunities_Order(t *testing.T) {
	g := sized(10, 10, [2]int{0, 0}, [2]int{0, 1}, [2]int{5, 5}, [2]int{9, 9})
	tg, err := NewTorusGraph(g, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 1, 99}, {55}}, tg.Communities())
}

// TestCountCommunities_MatchesFloodFill compares the union-find count with a
// straightforward BFS flood fill on random grids of assorted shapes.
func TestCountCommunities_MatchesFloodFill(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		rows, cols := 1+rng.Intn(12), 1+rng.Intn(12)
		g := sized(rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g[r][c] = rng.Intn(3) == 0
			}
		}
		require.Equal(t, floodFill(g), CountCommunities(g), "trial %d (%dx%d)", trial, rows, cols)
	}
}

// floodFill counts 8-connected toroidal islands with BFS.
func floodFill(g boolGrid) int {
	rows, cols := g.Rows(), g.Cols()
	seen := make([]bool, rows*cols)
	count := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !g[r][c] || seen[r*cols+c] {
				continue
			}
			count++
			queue := [][2]int{{r, c}}
			seen[r*cols+c] = true
			for len(queue) > 0 {
				u := queue[0]
				queue = queue[1:]
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						nr, nc := (u[0]+dr+rows)%rows, (u[1]+dc+cols)%cols
						if g[nr][nc] && !seen[nr*cols+nc] {
							seen[nr*cols+nc] = true
							queue = append(queue, [2]int{nr, nc})
						}
					}
				}
			}
		}
	}
	return count
}
