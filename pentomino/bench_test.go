package pentomino_test

import (
	"testing"

	"github.com/katalvlaran/dlx/pentomino"
)

// BenchmarkTilings_First measures time to the first tiling, encoding
// included.
func BenchmarkTilings_First(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, ok := pentomino.Tilings().Next(); !ok {
			b.Fatal("expected at least one tiling")
		}
	}
}

// BenchmarkTilings_Full enumerates the complete space. With rotations and
// reflections included the count is 9356; this is the long-running
// benchmark, not part of the test suite.
func BenchmarkTilings_Full(b *testing.B) {
	for i := 0; i < b.N; i++ {
		count := 0
		tl := pentomino.Tilings()
		for _, ok := tl.Next(); ok; _, ok = tl.Next() {
			count++
		}
		if count != 9356 {
			b.Fatalf("expected 9356 tilings, got %d", count)
		}
	}
}
