package maze

import (
	"math/rand"
	"time"
)

// Rand is the uniform random index source generators draw from. Both
// *math/rand.Rand and fixed sequences used by tests satisfy it.
type Rand interface {
	Intn(n int) int
}

// Generator carves passages into a grid.
type Generator interface {
	Generate(g *Grid)
}

// DFSGenerator carves a perfect maze with an iterative randomized
// depth-first backtracker. The carved passages form a spanning tree of the
// grid: exactly rows*cols-1 walls come down, every cell is reachable from
// every other, and there is exactly one path between any two cells.
type DFSGenerator struct {
	rng Rand
}

// NewDFSGenerator returns a generator drawing from rng. A nil rng gets a
// time-seeded source.
func NewDFSGenerator(rng Rand) *DFSGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DFSGenerator{rng: rng}
}

// Generate carves g in place. The grid is restored to its fully walled state
// first, so carving an already carved grid yields a fresh maze rather than a
// broken one.
//
// The walk starts at the top-left cell and repeatedly steps to a random
// unvisited neighbor, removing the wall in between. Dead ends backtrack via
// an explicit stack, so deep mazes never touch the call stack.
func (d *DFSGenerator) Generate(g *Grid) {
	g.resetForCarve()

	start := CellPosition{Row: 0, Col: 0}
	g.cells[start.Row][start.Col].visited = true

	stack := make([]CellPosition, 0, g.rows*g.cols)
	stack = append(stack, start)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := d.unvisitedNeighbors(g, current)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		move := candidates[d.rng.Intn(len(candidates))]
		g.RemoveWallBetween(move.From, move.To)
		g.cells[move.To.Row][move.To.Col].visited = true
		stack = append(stack, move.To)
	}
}

func (d *DFSGenerator) unvisitedNeighbors(g *Grid, pos CellPosition) []Move {
	var candidates []Move
	for _, move := range g.NeighborsOf(pos) {
		if !g.cells[move.To.Row][move.To.Col].visited {
			candidates = append(candidates, move)
		}
	}
	return candidates
}

// New returns a rows by cols grid carved by a time-seeded DFSGenerator.
func New(rows, cols int) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	NewDFSGenerator(nil).Generate(g)
	return g, nil
}
