package gridgraph

import "github.com/katalvlaran/lvlife/unionfind"

// CountCommunities returns the number of communities of live cells in
// cells under the default 8-neighbor wrapping adjacency.
// A nil or empty grid, or one without live cells, yields 0.
//
// Time:   O(W·H·8·α(W·H)).
// Memory: O(W·H).
func CountCommunities(cells Cells) int {
	tg, err := NewTorusGraph(cells, DefaultOptions())
	if err != nil {
		return 0
	}

	return tg.CountCommunities()
}

// CountCommunities returns how many distinct union-find roots the live
// cells of tg end up with.
func (tg *TorusGraph) CountCommunities() int {
	uf := tg.join()
	seen := make([]bool, len(tg.alive))
	count := 0
	for i, alive := range tg.alive {
		if !alive {
			continue
		}
		root := tg.root(uf, i)
		if !seen[root] {
			seen[root] = true
			count++
		}
	}

	return count
}

// Communities finds all communities of live cells according to tg.Conn.
// Each community is a slice of row‑major cell indices in ascending order;
// communities are ordered by their smallest index.
//
// To convert an index back to (row, col), use Coordinate(idx).
//
// Time:   O(W·H·d·α(W·H)), where d = 4 or 8.
// Memory: O(W·H) for the forest and output.
func (tg *TorusGraph) Communities() [][]int {
	uf := tg.join()
	slot := make(map[int]int)
	var comps [][]int
	for i, alive := range tg.alive {
		if !alive {
			continue
		}
		root := tg.root(uf, i)
		k, ok := slot[root]
		if !ok {
			k = len(comps)
			slot[root] = k
			comps = append(comps, nil)
		}
		comps[k] = append(comps[k], i)
	}

	return comps
}

// join builds a forest over every cell and unions each live cell with each
// live neighbor. Pairs met twice, or a cell aliased onto itself on a narrow
// grid, are no-op unions.
func (tg *TorusGraph) join() *unionfind.UnionFind {
	// Rows and Cols are positive, so New cannot fail.
	uf, _ := unionfind.New(len(tg.alive))
	for r := 0; r < tg.Rows; r++ {
		for c := 0; c < tg.Cols; c++ {
			u := tg.Index(r, c)
			if !tg.alive[u] {
				continue
			}
			for _, d := range tg.neighborOffsets {
				v := tg.Neighbor(r, c, d)
				if tg.alive[v] {
					// u and v come from wrapped in-range coordinates.
					_ = uf.Union(u, v)
				}
			}
		}
	}

	return uf
}

func (tg *TorusGraph) root(uf *unionfind.UnionFind, idx int) int {
	root, _ := uf.Find(idx)

	return root
}
