package matrix

// Solve runs the callback-driven driver: an exhaustive depth-first search
// that explores the entire solution space within this one call, invoking
// h.OnTry / h.OnUndo for every tentative row choice and withdrawal and
// h.OnComplete once per full solution. Preselected rows are reported via
// OnTry first and are never undone. The engine materializes nothing in
// this mode; the caller accumulates trials into whatever structure it
// wants.
//
// Solve is valid exactly once per matrix; when it returns, the matrix is
// in the done stage and any further solve panics. The search never fails:
// an unsatisfiable matrix simply completes with zero OnComplete calls.
func (m *SparseMatrix) Solve(h Hooks) {
	m.beginSolve("Solve")
	h = h.normalized()

	for _, r := range m.prefix {
		h.OnTry(r)
	}

	m.search(h)
	m.stage = stageDone
}

// search is the recursive core of Algorithm X: pick the most constrained
// column, hide it, and try covering each of its candidate rows in ring
// order, recursing after each trial and undoing it on return. The
// hide/cover and uncover/unhide pairs bracket each other exactly, so the
// matrix is bit-for-bit restored when the call unwinds.
func (m *SparseMatrix) search(h Hooks) {
	// 1. Column selection: solved, dead end, or branch
	col := m.mostConstrained()
	if col == rootSlot {
		h.OnComplete()

		return
	}
	if col == noColumn {
		return
	}

	// 2. Branch on each candidate row of the chosen column, top to bottom
	m.hideColumn(col)
	for c := m.cells[col].link[down]; c != col; c = m.cells[c].link[down] {
		m.cover(c, h.OnTry)
		m.search(h)
		m.uncover(c, h.OnUndo)
	}
	m.unhideColumn(col)
}
