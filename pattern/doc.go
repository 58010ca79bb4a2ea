// Package pattern loads seed grids for the life engine from files.
//
// Two formats are understood:
//
//   - Text: whitespace separated tokens. The first two are the number of
//     rows and columns, followed by rows×cols booleans in row-major order
//     ("true"/"false", or "1"/"0", any case). Line breaks carry no meaning.
//
//     3 3
//     false true  false
//     false true  false
//     false true  false
//
//   - YAML: a document with a name, dimensions and either a list of live
//     [row, col] pairs or a picture of the grid ('#', 'O' or '1' alive,
//     '.' or '0' dead).
//
//     name: blinker
//     rows: 5
//     cols: 5
//     alive: [[2, 1], [2, 2], [2, 3]]
//
// Load picks the decoder from the file extension. Watcher reports when a
// pattern file changes on disk so callers can reload it.
package pattern
