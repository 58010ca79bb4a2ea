// Package lvlife is a small toolkit for Conway's Game of Life on a torus,
// with community analysis of the live cells.
//
// What is inside:
//
//		• life           Grid container and Engine: neighbor counts, B3/S23 step, advance by n
//		• unionfind      disjoint-set forest with path compression and union-by-size
//		• gridgraph      the grid as a wrap-around graph; communities via union-find
//		• pattern        seed loaders (text and YAML) and a file watcher
//		• cmd/lifecount  command-line runner
//
// The root package ties an Engine to the community counter through Game:
//
//	g := lvlife.NewDefaultGame()
//	g.AdvanceN(2)
//	fmt.Println(g.AliveCount(), g.Communities())
//
// Everything is single-threaded and deterministic; a generation is always
// fully recomputed from the previous one.
//
//	go get github.com/katalvlaran/lvlife
package lvlife
