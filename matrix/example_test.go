package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/dlx/matrix"
)

// ExampleSparseMatrix_Solve enumerates the exact covers of a tiny instance
// through the callback protocol. Rows 0..3 satisfy columns as follows:
//
//	row 0: {1, 2}
//	row 1: {2, 3}
//	row 2: {1, 3}
//	row 3: {1, 2, 3}
//
// Only row 3 covers every column exactly once.
func ExampleSparseMatrix_Solve() {
	m := matrix.New()
	for row, cols := range [][]int{{1, 2}, {2, 3}, {1, 3}, {1, 2, 3}} {
		for _, c := range cols {
			m.Declare(c, row)
		}
	}

	var trail []int
	m.Solve(matrix.Hooks{
		OnTry:      func(r int) { trail = append(trail, r) },
		OnUndo:     func(int) { trail = trail[:len(trail)-1] },
		OnComplete: func() { fmt.Println("cover:", trail) },
	})

	// Output:
	// cover: [3]
}

// ExampleSparseMatrix_Solutions pulls solutions lazily. The consumer may
// stop after any Next call; here the stream runs to exhaustion.
func ExampleSparseMatrix_Solutions() {
	m := matrix.New()
	// Two disjoint pairs of rows, two covers: {0, 3} and {1, 2}.
	for row, cols := range [][]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}} {
		for _, c := range cols {
			m.Declare(c, row)
		}
	}

	st := m.Solutions()
	for s, ok := st.Next(); ok; s, ok = st.Next() {
		fmt.Println("cover:", s)
	}

	// Output:
	// cover: [0 3]
	// cover: [1 2]
}
