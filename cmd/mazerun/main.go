// Command mazerun solves oriented grid mazes.
//
// Usage:
//
//	mazerun solve maze.txt            # minimum cost and optimal cell count
//	mazerun solve --show maze.txt     # also draw the optimal cells
//	mazerun batch testdata/*.txt      # many mazes on a worker pool
//	mazerun view --watch maze.txt     # animate the search in the terminal
//	mazerun config init mazerun.yaml  # write the default configuration
package main

import (
	"context"
	"os"
)

func main() {
	if err := execute(context.Background(), &app{}, os.Args[1:], os.Stdout, os.Stderr, os.Stdin); err != nil {
		os.Exit(1)
	}
}
