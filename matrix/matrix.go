package matrix

import "fmt"

// SparseMatrix is the exact-cover engine. It owns an arena of cells (slot 0
// is the root sentinel), an index from column id to header slot, and an
// index from row id to one arbitrary member cell of that row's ring.
//
// Build it with New, register conditions with Declare, optionally call
// MarkOptional and Preselect, then run exactly one of Solve or Solutions.
// A zero SparseMatrix is not usable.
type SparseMatrix struct {
	cells []cell // arena; links address slots in this slice
	cols  []int  // column id → header slot, 0 = not declared
	rows  []int  // row id → any member slot of the row ring, 0 = none

	// prefix records preselected rows in call order; it is prepended to
	// every enumerated solution.
	prefix []int

	stage stage
}

// New returns an empty matrix in the construction stage. The root sentinel
// occupies arena slot 0 with an infinite live-count, so the column-selection
// scan can treat it as "worse than any real column".
func New() *SparseMatrix {
	m := &SparseMatrix{cells: make([]cell, 0, 64)}
	m.newCell(headerRow, 0)
	m.cells[rootSlot].count = headerRow

	return m
}

// advance asserts that op is legal in the current stage and moves the stage
// marker forward. The marker never moves backwards: once optional-marking
// has begun, Declare is gone for good.
func (m *SparseMatrix) advance(s stage, op string) {
	if m.stage > s {
		panic(fmt.Sprintf("matrix: %s: stage violation: matrix already in %s stage", op, m.stage))
	}
	m.stage = s
}

// beginSolve guards both enumeration drivers. Starting a second solve —
// whether the first ran to completion or a lazy stream was abandoned
// mid-search — is a contract violation.
func (m *SparseMatrix) beginSolve(op string) {
	if m.stage >= stageSolve {
		panic(fmt.Sprintf("matrix: %s: stage violation: matrix already in %s stage", op, m.stage))
	}
	m.stage = stageSolve
}

// Declare registers that row satisfies col, creating the column header on
// first reference. Duplicate (col, row) pairs are silently ignored.
// Column rings stay sorted by row id and row rings by column id; neither is
// required for correctness, but both make enumeration order deterministic
// and the matrix far easier to debug.
//
// Valid only in the construction stage; negative ids panic.
func (m *SparseMatrix) Declare(col, row int) {
	// 1. Contract checks
	m.advance(stageBuild, "Declare")
	if col < 0 || row < 0 {
		panic(fmt.Sprintf("matrix: Declare(%d, %d): ids must be non-negative", col, row))
	}

	// 2. Locate the insertion point in the column ring (header if empty).
	// A cell already carrying this row id means a duplicate declaration.
	h := m.header(col)
	at := m.columnSlot(h, row)
	if m.cells[at].row == row {
		return
	}

	// 3. Splice a fresh cell into both rings and bump the column's count
	n := m.newCell(row, col)
	m.insertAbove(n, at)
	m.hookRow(n, row)
	m.cells[h].count++
}

// header returns the slot of col's header, allocating it and linking it at
// the end of the root ring on first reference.
func (m *SparseMatrix) header(col int) int {
	for len(m.cols) <= col {
		m.cols = append(m.cols, 0)
	}
	h := m.cols[col]
	if h == 0 {
		h = m.newCell(headerRow, col)
		m.insertBefore(h, rootSlot)
		m.cols[col] = h
	}

	return h
}

// columnSlot scans col's ring for the cell closest below the insertion point
// of row: the live cell with the smallest row id ≥ row, or the header when
// no such cell exists. A returned cell with an equal row id is a duplicate.
func (m *SparseMatrix) columnSlot(h, row int) int {
	best := h // header carries headerRow, i.e. larger than any real row id
	for t := m.cells[h].link[down]; t != h; t = m.cells[t].link[down] {
		if m.cells[t].row >= row && m.cells[t].row < m.cells[best].row {
			best = t
		}
	}

	return best
}

// hookRow links slot n into row's ring, keeping the cyclic order sorted by
// column id. The first cell of a row becomes the ring anchor in m.rows.
func (m *SparseMatrix) hookRow(n, row int) {
	for len(m.rows) <= row {
		m.rows = append(m.rows, 0)
	}
	anchor := m.rows[row]
	if anchor == 0 {
		m.rows[row] = n

		return
	}

	// Successor in cyclic sorted order: the smallest column id greater than
	// ours, wrapping to the overall smallest when we are the new maximum.
	c := m.cells[n].col
	succ, min := 0, anchor
	for t := anchor; ; {
		tc := m.cells[t].col
		if tc > c && (succ == 0 || tc < m.cells[succ].col) {
			succ = t
		}
		if tc < m.cells[min].col {
			min = t
		}
		if t = m.cells[t].link[right]; t == anchor {
			break
		}
	}
	if succ == 0 {
		succ = min
	}
	m.insertBefore(n, succ)
}

// MarkOptional detaches col's header from the root ring permanently: the
// column no longer has to be covered, is skipped by the column-selection
// scan, and never forces a dead end when empty — yet its own ring keeps
// working, so covering a row that touches it still excludes every other
// row touching it ("at most one" semantics).
//
// Valid only after construction and before any preselection; col must have
// been declared.
func (m *SparseMatrix) MarkOptional(col int) {
	m.advance(stageOptional, "MarkOptional")
	if col < 0 || col >= len(m.cols) || m.cols[col] == 0 {
		panic(fmt.Sprintf("matrix: MarkOptional(%d): column was never declared", col))
	}

	h := m.cols[col]
	m.rowDetach(h)
	m.orphan(h)
}

// Preselect forces row into every enumerated solution by hiding every
// column it satisfies, exactly as the search's trial step would, without
// ever undoing. Preselecting the same row twice is a no-op.
//
// Valid only after optional-marking and before solving; row must have been
// declared.
func (m *SparseMatrix) Preselect(row int) {
	m.advance(stagePreselect, "Preselect")
	if row < 0 || row >= len(m.rows) || m.rows[row] == 0 {
		panic(fmt.Sprintf("matrix: Preselect(%d): row was never declared", row))
	}

	for _, p := range m.prefix {
		if p == row {
			return
		}
	}

	// Row rings never break, so the ring is safe to walk while columns
	// vanish underneath it.
	anchor := m.rows[row]
	m.hideColumn(m.cols[m.cells[anchor].col])
	for t := m.cells[anchor].link[right]; t != anchor; t = m.cells[t].link[right] {
		m.hideColumn(m.cols[m.cells[t].col])
	}

	m.prefix = append(m.prefix, row)
}
