// Package gridgraph treats a toroidal 2D grid of live/dead cells as a graph
// and groups the live cells into communities.
//
// What:
//
//   - TorusGraph wraps any Cells view (life.Grid satisfies it) with wrap-around
//     adjacency: the top row touches the bottom row and the left column touches
//     the right column.
//   - Communities returns every maximal set of live cells joined through
//     neighbor links, each as a slice of row-major cell indices.
//   - CountCommunities returns only how many there are.
//
// How:
//
//   - Each cell (row, col) gets id row*Cols + col in a unionfind.UnionFind of
//     Rows×Cols ids. Every live cell is unioned with each live neighbor, then
//     the distinct roots of live cells are counted.
//
// Complexity:
//
//   - Communities / CountCommunities: O(W×H×d·α(W×H)), Memory: O(W×H)
//     (d = number of neighbors, 4 or 8).
//
// Options:
//
//   - Options.Conn: Conn8 (8-neighbors, default) or Conn4 (4-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no rows or no columns.
package gridgraph
