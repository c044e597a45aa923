// Command sudoku solves and benchmarks 9x9 sudoku puzzles.
package main

import (
	"github.com/will2dye4/sudoku/cli"
)

func main() {
	cli.Execute()
}
