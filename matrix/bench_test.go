package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dlx/matrix"
)

// queensDeclare encodes the n-queens exact cover inline: required row and
// column conditions, optional diagonals. Kept here so the engine benchmarks
// do not depend on the encoder packages.
func queensDeclare(m *matrix.SparseMatrix, n int) {
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			r := col*n + row
			m.Declare(row, r)
			m.Declare(col+n, r)
			m.Declare(col+row+2*n, r)
			m.Declare(col-row+5*n, r)
		}
	}
	for i := 0; i < 2*n-1; i++ {
		m.MarkOptional(i + 2*n)
	}
	for i := -n + 1; i < n; i++ {
		m.MarkOptional(i + 5*n)
	}
}

// BenchmarkDeclare measures matrix construction with sorted ring insertion
// on an 8-queens-sized instance (64 rows × 4 conditions each).
func BenchmarkDeclare(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := matrix.New()
		queensDeclare(m, 8)
	}
}

// BenchmarkSolve_Queens8 measures full enumeration (92 solutions) through
// the callback driver, construction included.
func BenchmarkSolve_Queens8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := matrix.New()
		queensDeclare(m, 8)

		count := 0
		m.Solve(matrix.Hooks{OnComplete: func() { count++ }})
		if count != 92 {
			b.Fatalf("expected 92 solutions, got %d", count)
		}
	}
}

// BenchmarkSolutions_Queens8 measures the same enumeration through the lazy
// driver, one pull per solution.
func BenchmarkSolutions_Queens8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := matrix.New()
		queensDeclare(m, 8)

		count := 0
		st := m.Solutions()
		for _, ok := st.Next(); ok; _, ok = st.Next() {
			count++
		}
		if count != 92 {
			b.Fatalf("expected 92 solutions, got %d", count)
		}
	}
}
