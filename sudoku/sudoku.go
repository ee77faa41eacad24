// Package sudoku solves classic 9×9 Sudoku by encoding it as an exact
// cover for the matrix engine: 324 columns (81 cell, 81 row-digit, 81
// column-digit, 81 box-digit conditions) over 729 candidate rows, one per
// (rank, file, digit) triple. Givens are applied through preselection, so
// the search only ever explores grids consistent with the puzzle.
//
// Complexity: building the matrix is O(729×4) declarations; a proper
// puzzle solves in a few thousand ring operations thanks to the
// most-constrained-column heuristic.
//
// Errors:
//
//   - ErrBadGiven: a clue outside 0..9 or two equal clues sharing a rank,
//     file, or box.
//   - ErrNoSolution: the puzzle admits no completed grid.
//   - ErrMultipleSolutions: the puzzle is not proper (Solve only; use
//     Unique to probe for this without failing).
package sudoku

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dlx/matrix"
)

var (
	// ErrBadGiven indicates an out-of-range or conflicting clue.
	ErrBadGiven = errors.New("sudoku: invalid given")
	// ErrNoSolution indicates the puzzle cannot be completed.
	ErrNoSolution = errors.New("sudoku: no solution")
	// ErrMultipleSolutions indicates the puzzle has more than one
	// completion and therefore is not a proper Sudoku.
	ErrMultipleSolutions = errors.New("sudoku: multiple solutions")
)

// Grid is a 9×9 board; 0 marks an empty cell, 1..9 a clue or a solved
// digit. Grid[rank][file].
type Grid [9][9]int

// Column bases for the four condition families.
const (
	cellBase = 0
	rankBase = 81
	fileBase = 162
	boxBase  = 243
)

// rowID maps a candidate (rank, file, digit d in 0..8) to its matrix row.
func rowID(rank, file, d int) int {
	return rank*81 + file*9 + d
}

// encode declares all 729 candidate rows with their four conditions each.
func encode() *matrix.SparseMatrix {
	m := matrix.New()
	for rank := 0; rank < 9; rank++ {
		for file := 0; file < 9; file++ {
			box := (rank/3)*3 + file/3
			for d := 0; d < 9; d++ {
				r := rowID(rank, file, d)
				m.Declare(cellBase+9*rank+file, r)
				m.Declare(rankBase+9*rank+d, r)
				m.Declare(fileBase+9*file+d, r)
				m.Declare(boxBase+9*box+d, r)
			}
		}
	}

	return m
}

// validate rejects out-of-range clues and pairwise conflicts. Conflicting
// clues must be caught here: preselecting two rows that share a condition
// would corrupt the matrix rather than fail cleanly.
func validate(g Grid) error {
	var seenRank, seenFile, seenBox [9][10]bool
	for rank := 0; rank < 9; rank++ {
		for file := 0; file < 9; file++ {
			v := g[rank][file]
			if v < 0 || v > 9 {
				return fmt.Errorf("cell (%d,%d) holds %d: %w", rank, file, v, ErrBadGiven)
			}
			if v == 0 {
				continue
			}
			box := (rank/3)*3 + file/3
			if seenRank[rank][v] || seenFile[file][v] || seenBox[box][v] {
				return fmt.Errorf("cell (%d,%d): duplicate %d: %w", rank, file, v, ErrBadGiven)
			}
			seenRank[rank][v] = true
			seenFile[file][v] = true
			seenBox[box][v] = true
		}
	}

	return nil
}

// prepare validates g and returns a matrix with every clue preselected.
func prepare(g Grid) (*matrix.SparseMatrix, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	m := encode()
	for rank := 0; rank < 9; rank++ {
		for file := 0; file < 9; file++ {
			if v := g[rank][file]; v != 0 {
				m.Preselect(rowID(rank, file, v-1))
			}
		}
	}

	return m, nil
}

// decode rebuilds a grid from a solved row-id set.
func decode(rows []int) Grid {
	var g Grid
	for _, r := range rows {
		g[r/81][(r/9)%9] = r%9 + 1
	}

	return g
}

// Solve completes the puzzle. It insists on properness: a second completed
// grid, if one exists, is searched for and reported as ErrMultipleSolutions.
func Solve(g Grid) (Grid, error) {
	m, err := prepare(g)
	if err != nil {
		return Grid{}, err
	}

	st := m.Solutions()
	first, ok := st.Next()
	if !ok {
		return Grid{}, ErrNoSolution
	}
	if _, more := st.Next(); more {
		return Grid{}, ErrMultipleSolutions
	}

	return decode(first), nil
}

// Unique reports whether the puzzle has exactly one completion.
func Unique(g Grid) (bool, error) {
	m, err := prepare(g)
	if err != nil {
		return false, err
	}

	st := m.Solutions()
	if _, ok := st.Next(); !ok {
		return false, nil
	}
	_, more := st.Next()

	return !more, nil
}
