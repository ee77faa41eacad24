package queens_test

import (
	"testing"

	"github.com/katalvlaran/dlx/queens"
)

// BenchmarkCount_11 enumerates all 2680 placements of 11 queens, encoding
// included. This is the original exercise size for the engine.
func BenchmarkCount_11(b *testing.B) {
	for i := 0; i < b.N; i++ {
		n, err := queens.Count(11)
		if err != nil {
			b.Fatal(err)
		}
		if n != 2680 {
			b.Fatalf("expected 2680 solutions, got %d", n)
		}
	}
}
