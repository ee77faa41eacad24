package sudoku_test

import (
	"fmt"

	"github.com/katalvlaran/dlx/sudoku"
)

// ExampleSolve completes the Wikipedia puzzle and prints the first rank of
// the solved grid.
func ExampleSolve() {
	puzzle := sudoku.Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}

	solved, err := sudoku.Solve(puzzle)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(solved[0])

	// Output:
	// [5 3 4 6 7 8 9 1 2]
}
