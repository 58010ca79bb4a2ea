package lvlife

import (
	"github.com/katalvlaran/lvlife/gridgraph"
	"github.com/katalvlaran/lvlife/life"
)

// Game is a life.Engine together with community analysis of its current
// generation. All life.Engine methods are available on a Game.
type Game struct {
	*life.Engine
}

// NewGame seeds a Game with a copy of g.
func NewGame(g *life.Grid) *Game {
	return &Game{Engine: life.NewEngine(g)}
}

// NewDefaultGame seeds a Game with life.DefaultPattern.
func NewDefaultGame() *Game {
	return &Game{Engine: life.NewDefaultEngine()}
}

// The Engine is read in place as a grid view; the torus graph takes the
// only copy.
var _ gridgraph.Cells = (*life.Engine)(nil)

// Communities returns the number of 8-connected, wrap-around groups of
// live cells in the current generation. It does not change the Game.
func (g *Game) Communities() int {
	return gridgraph.CountCommunities(g.Engine)
}
