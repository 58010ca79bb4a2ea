// Package life simulates Conway's Game of Life on a toroidal grid.
//
// What:
//
//   - Grid is a fixed-size rows×cols container of live/dead flags stored as a
//     flat row-major buffer. Its dimensions never change after construction.
//   - Engine owns the current Grid and its alive total, and advances it one or
//     n generations at a time under the B3/S23 rule.
//   - Edges wrap: row -1 is row rows-1 and column cols is column 0, so every
//     cell has exactly eight neighbors.
//
// Rule table:
//
//	alive, ≤1 neighbors  → dead  (loneliness)
//	alive, 2–3 neighbors → alive (survival)
//	alive, ≥4 neighbors  → dead  (overpopulation)
//	dead,  3 neighbors   → alive (birth)
//	dead,  otherwise     → dead
//
// Step always writes the next generation into a freshly allocated Grid and
// reads only the previous one; Advance swaps the result in once the whole
// generation is computed.
//
// Complexity:
//
//   - NeighborCount: O(1).
//   - Step/Advance:  O(R×C) time, O(R×C) memory for the new generation.
//   - AdvanceN(n):   O(n×R×C) time.
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols is not positive.
//   - ErrNonRectangular: rows of a 2D input have differing lengths.
//   - ErrCellCount: a flat input does not hold exactly rows×cols values.
//
// Out-of-range CellState queries are not errors: they report a dead cell.
package life
