package matrix

// Region mutation layer: the reversibility contract the search depends on.
// hideColumn and unhideColumn are exact inverses provided unhide runs in
// exactly reversed traversal order (rows bottom-up, cells right-to-left
// become rows top-down, cells left-to-right undone last-first). The same
// symmetry binds cover and uncover. Violating the ordering corrupts rings
// silently, which is why nothing outside this file touches detach/restore.

// hideColumn removes header h from the root ring, then detaches every cell
// that shares a row with h's column from its own column, decrementing the
// affected headers' live-counts. This removes all rows that would conflict
// with a choice covering h. The hidden column's own ring stays intact, so
// the search can still iterate its candidate rows.
func (m *SparseMatrix) hideColumn(h int) {
	m.rowDetach(h)

	for i := m.cells[h].link[down]; i != h; i = m.cells[i].link[down] {
		for j := m.cells[i].link[right]; j != i; j = m.cells[j].link[right] {
			m.columnDetach(j)
			m.cells[m.cols[m.cells[j].col]].count--
		}
	}
}

// unhideColumn is the exact inverse of hideColumn: cells return to their
// columns in reverse hide order (up then left), counts are restored, and
// the header rejoins the root ring last.
func (m *SparseMatrix) unhideColumn(h int) {
	for i := m.cells[h].link[up]; i != h; i = m.cells[i].link[up] {
		for j := m.cells[i].link[left]; j != i; j = m.cells[j].link[left] {
			m.columnRestore(j)
			m.cells[m.cols[m.cells[j].col]].count++
		}
	}

	m.rowRestore(h)
}

// cover reports c's row as tentatively selected via onTry, then hides every
// other column that row satisfies, left-to-right. The column c itself
// belongs to has already been hidden by the caller.
func (m *SparseMatrix) cover(c int, onTry func(int)) {
	onTry(m.cells[c].row)

	for t := m.cells[c].link[right]; t != c; t = m.cells[t].link[right] {
		m.hideColumn(m.cols[m.cells[t].col])
	}
}

// uncover is the exact inverse of cover: unhide the same columns
// right-to-left, then report the row withdrawn via onUndo.
func (m *SparseMatrix) uncover(c int, onUndo func(int)) {
	for t := m.cells[c].link[left]; t != c; t = m.cells[t].link[left] {
		m.unhideColumn(m.cols[m.cells[t].col])
	}

	onUndo(m.cells[c].row)
}

// mostConstrained scans the root ring for the active column with the fewest
// live cells (ties broken by ring order). It returns rootSlot when the ring
// is empty — every required column is covered, a full solution exists — and
// noColumn when some active column has live-count zero, meaning the current
// branch is unsatisfiable and the search should backtrack at once.
func (m *SparseMatrix) mostConstrained() int {
	best := rootSlot // the root's count is infinite, any header beats it
	for t := m.cells[rootSlot].link[right]; t != rootSlot; t = m.cells[t].link[right] {
		if m.cells[t].count == 0 {
			return noColumn
		}
		if m.cells[t].count < m.cells[best].count {
			best = t
		}
	}

	return best
}
