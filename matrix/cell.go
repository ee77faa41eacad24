package matrix

// Ring primitives. All of them splice a single slot into or out of one of
// its two rings in O(1). Detach leaves the detached cell's own links intact,
// which is exactly what makes Restore possible: the cell still remembers its
// former neighbors, so re-linking is two writes. Restores must therefore be
// performed in exact reverse order of the detaches that preceded them.

// newCell appends a fresh self-linked slot to the arena and returns its index.
func (m *SparseMatrix) newCell(row, col int) int {
	n := len(m.cells)
	m.cells = append(m.cells, cell{
		link: [4]int{n, n, n, n},
		row:  row,
		col:  col,
	})

	return n
}

// insertAbove links slot n into target's column ring, directly above target.
// Inserting above the header appends at the bottom of the column.
func (m *SparseMatrix) insertAbove(n, target int) {
	prev := m.cells[target].link[up]
	m.cells[n].link[down] = target
	m.cells[n].link[up] = prev
	m.cells[prev].link[down] = n
	m.cells[target].link[up] = n
}

// insertBefore links slot n into target's row ring, directly left of target.
// Inserting before the root appends a header at the end of the root ring.
func (m *SparseMatrix) insertBefore(n, target int) {
	prev := m.cells[target].link[left]
	m.cells[n].link[right] = target
	m.cells[n].link[left] = prev
	m.cells[prev].link[right] = n
	m.cells[target].link[left] = n
}

// columnDetach unlinks slot n from its column ring. n keeps its own up/down
// links for the matching columnRestore.
func (m *SparseMatrix) columnDetach(n int) {
	c := &m.cells[n]
	m.cells[c.link[up]].link[down] = c.link[down]
	m.cells[c.link[down]].link[up] = c.link[up]
}

// columnRestore re-links slot n into its column ring between the neighbors
// it was detached from. Valid only as the exact inverse of the most recent
// columnDetach affecting those neighbors.
func (m *SparseMatrix) columnRestore(n int) {
	c := &m.cells[n]
	m.cells[c.link[up]].link[down] = n
	m.cells[c.link[down]].link[up] = n
}

// rowDetach unlinks slot n from its row ring, keeping n's own links.
func (m *SparseMatrix) rowDetach(n int) {
	c := &m.cells[n]
	m.cells[c.link[left]].link[right] = c.link[right]
	m.cells[c.link[right]].link[left] = c.link[left]
}

// rowRestore is the exact inverse of the most recent rowDetach of slot n.
func (m *SparseMatrix) rowRestore(n int) {
	c := &m.cells[n]
	m.cells[c.link[left]].link[right] = n
	m.cells[c.link[right]].link[left] = n
}

// orphan collapses slot n's row ring links onto itself. Used when a column
// header leaves the root ring permanently (optional columns), so that later
// rowDetach/rowRestore pairs on it during hide/unhide are harmless no-ops.
func (m *SparseMatrix) orphan(n int) {
	m.cells[n].link[left] = n
	m.cells[n].link[right] = n
}
