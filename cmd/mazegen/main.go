// mazegen carves a maze and prints it to stdout. Handy for eyeballing the
// generator or reproducing a carve from a known seed.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/maze-sprint-api/maze"
)

func run() int {
	var rows, cols int
	var seed int64
	flag.IntVar(&rows, "rows", 20, "The height, in cells, of the maze.")
	flag.IntVar(&cols, "cols", 20, "The width, in cells, of the maze.")
	flag.Int64Var(&seed, "seed", -1,
		"The seed for the maze's RNG. Leave at -1 to seed from the clock.")
	flag.Parse()

	if seed == -1 {
		seed = time.Now().UnixNano()
	}

	grid, err := maze.NewGrid(rows, cols)
	if err != nil {
		fmt.Printf("Invalid maze dimensions: %s\n", err)
		return 1
	}
	maze.NewDFSGenerator(rand.New(rand.NewSource(seed))).Generate(grid)

	fmt.Printf("Maze with seed %d:\n%s", seed, grid.String())
	return 0
}

func main() {
	os.Exit(run())
}
