// Package setcover is a deliberately small exact-cover solver built on
// plain sets and maps — the readable, textbook counterpart to the ring
// engine in matrix. It trades all of the Dancing Links performance for a
// body that fits on one screen, which makes it useful as a reference
// implementation and as a test oracle for small instances.
//
// What:
//
//   - Solve(columns, rows): enumerate every selection of rows covering each
//     column exactly once. Rows are named; a row lists the columns it
//     satisfies.
//
// Why:
//
//   - The matrix engine earns its complexity through pointer discipline;
//     this package shows the same search with none of it, so the two can
//     check each other.
//
// Complexity:
//
//   - Exponential in rows, with O(rows × columns) bookkeeping per step.
//     Not intended for instances beyond a few dozen rows.
//
// Errors:
//
//   - ErrEmptyUniverse: no columns were given.
//   - ErrUnknownColumn: a row references a column outside the universe.
package setcover

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyUniverse indicates Solve was given no columns to cover.
	ErrEmptyUniverse = errors.New("setcover: no columns to cover")
	// ErrUnknownColumn indicates a row references a column that is not part
	// of the universe.
	ErrUnknownColumn = errors.New("setcover: row references unknown column")
)

// Solve enumerates every exact cover of columns by the named rows, in a
// deterministic order: the search always branches on the column with the
// fewest candidate rows (ties to the smallest column id) and tries
// candidate rows in lexicographic name order.
func Solve(columns []int, rows map[string][]int) ([][]string, error) {
	// 1. Build the column → candidate-rows index
	if len(columns) == 0 {
		return nil, ErrEmptyUniverse
	}
	index := make(map[int]map[string]bool, len(columns))
	for _, c := range columns {
		index[c] = make(map[string]bool)
	}
	for name, cs := range rows {
		for _, c := range cs {
			set, ok := index[c]
			if !ok {
				return nil, fmt.Errorf("row %q, column %d: %w", name, c, ErrUnknownColumn)
			}
			set[name] = true
		}
	}

	// 2. Depth-first search with select/deselect mirroring each other
	var (
		solutions [][]string
		partial   []string
		walk      func()
	)
	walk = func() {
		if len(index) == 0 {
			solutions = append(solutions, append([]string(nil), partial...))

			return
		}

		c := chooseColumn(index)
		for _, r := range sortedRows(index[c]) {
			partial = append(partial, r)
			removed := selectRow(index, rows, r)
			walk()
			deselectRow(index, rows, r, removed)
			partial = partial[:len(partial)-1]
		}
	}
	walk()

	return solutions, nil
}

// chooseColumn picks the column with the fewest candidates, ties broken by
// the smallest column id so enumeration order is stable across runs.
func chooseColumn(index map[int]map[string]bool) int {
	best, bestSize := 0, -1
	for c, set := range index {
		if bestSize < 0 || len(set) < bestSize || (len(set) == bestSize && c < best) {
			best, bestSize = c, len(set)
		}
	}

	return best
}

// sortedRows snapshots a candidate set in lexicographic order; the set
// itself mutates during the recursive call.
func sortedRows(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Strings(out)

	return out
}

// selectRow removes row r's columns from the universe and r's competitors
// from every other column they share, returning the removed column sets in
// traversal order for deselectRow.
func selectRow(index map[int]map[string]bool, rows map[string][]int, r string) []map[string]bool {
	removed := make([]map[string]bool, 0, len(rows[r]))
	for _, j := range rows[r] {
		for i := range index[j] {
			for _, k := range rows[i] {
				if k != j {
					delete(index[k], i)
				}
			}
		}
		removed = append(removed, index[j])
		delete(index, j)
	}

	return removed
}

// deselectRow restores what selectRow removed, walking r's columns in
// reverse so each column set returns before its competitors are re-added.
func deselectRow(index map[int]map[string]bool, rows map[string][]int, r string, removed []map[string]bool) {
	for idx := len(rows[r]) - 1; idx >= 0; idx-- {
		j := rows[r][idx]
		index[j] = removed[idx]
		for i := range index[j] {
			for _, k := range rows[i] {
				if k != j {
					index[k][i] = true
				}
			}
		}
	}
}
