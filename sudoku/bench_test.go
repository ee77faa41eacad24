package sudoku_test

import (
	"testing"

	"github.com/katalvlaran/dlx/sudoku"
)

// BenchmarkSolve_Wikipedia measures a full solve of a proper puzzle,
// including the 729-row matrix build and the uniqueness probe.
func BenchmarkSolve_Wikipedia(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sudoku.Solve(wikiPuzzle); err != nil {
			b.Fatal(err)
		}
	}
}
