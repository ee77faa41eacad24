// Package queens encodes the N-Queens puzzle as an exact-cover instance
// for the matrix engine.
//
// What:
//
//   - Placements(n): every way to put n non-attacking queens on an n×n
//     board; a placement p maps rank r to file p[r].
//   - Count(n): the number of placements, streamed without materializing.
//
// Why:
//
//	N-Queens is the canonical small example of mixing required and
//	optional conditions: every rank and file must hold exactly one queen,
//	while each diagonal may hold at most one — so both diagonal families
//	become optional columns instead of forcing failures on short or empty
//	diagonals.
//
// Complexity: output-sensitive; the classic counts grow fast (8 → 92,
// 11 → 2680, 12 → 14200).
//
// Errors:
//
//   - ErrBadSize: n < 1.
package queens

import (
	"errors"

	"github.com/katalvlaran/dlx/matrix"
)

// ErrBadSize indicates a board size below 1.
var ErrBadSize = errors.New("queens: board size must be at least 1")

// Column layout per board cell (rank, file), with row id file*n + rank:
//
//	[0, n)      one queen per rank        (required)
//	[n, 2n)     one queen per file        (required)
//	[2n, 4n-1)  slash diagonals rank+file (optional)
//	[4n+1, 6n)  backslash diagonals file-rank, shifted by 5n (optional)
//
// The single-cell corner diagonals could be dropped entirely; declaring
// them optional costs nothing and keeps the indexing uniform.
func encode(n int) *matrix.SparseMatrix {
	m := matrix.New()
	for rank := 0; rank < n; rank++ {
		for file := 0; file < n; file++ {
			r := file*n + rank
			m.Declare(rank, r)
			m.Declare(file+n, r)
			m.Declare(file+rank+2*n, r)
			m.Declare(file-rank+5*n, r)
		}
	}
	for i := 0; i < 2*n-1; i++ {
		m.MarkOptional(i + 2*n)
	}
	for i := -n + 1; i < n; i++ {
		m.MarkOptional(i + 5*n)
	}

	return m
}

// decode turns a solved row-id set into a placement: p[rank] = file.
func decode(n int, rows []int) []int {
	p := make([]int, n)
	for _, r := range rows {
		p[r%n] = r / n
	}

	return p
}

// Placements enumerates every n-queens placement. The result order follows
// the engine's deterministic search order.
func Placements(n int) ([][]int, error) {
	if n < 1 {
		return nil, ErrBadSize
	}

	var out [][]int
	st := encode(n).Solutions()
	for rows, ok := st.Next(); ok; rows, ok = st.Next() {
		out = append(out, decode(n, rows))
	}

	return out, nil
}

// Count streams the solution space and reports its size without keeping
// any placement.
func Count(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadSize
	}

	count := 0
	encode(n).Solve(matrix.Hooks{OnComplete: func() { count++ }})

	return count, nil
}
