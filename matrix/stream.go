package matrix

// Lazy pull-based enumeration. A recursive generator would have to suspend
// from arbitrary recursion depth, paying a coroutine hop at every level, so
// the Stream reformulates the search iteratively: an explicit stack of
// (chosen column, currently tried cell) frames replaces the call stack.
// The solution sequence is identical in content and order to what Solve
// reports through its hooks; only the delivery mechanism differs.

// frame is one suspended search level: the column chosen at that level and
// the cell of the candidate row currently covered. A frame whose cell still
// equals its column header has not tried any row yet.
type frame struct {
	col  int
	cell int
}

// Stream enumerates solutions one Next call at a time. It owns every piece
// of resume state, so the consumer may simply stop pulling; note that doing
// so before exhaustion leaves the matrix partially hidden, and the matrix
// cannot be solved again either way.
type Stream struct {
	m     *SparseMatrix
	trail []int // prefix + rows covered along the current branch
	stack []frame

	onTry  func(int)
	onUndo func(int)

	entered bool
	done    bool
}

// Solutions returns the lazy driver for m. Valid exactly once per matrix;
// the matrix reaches the done stage when the stream is exhausted.
func (m *SparseMatrix) Solutions() *Stream {
	m.beginSolve("Solutions")

	s := &Stream{m: m}
	s.trail = append(s.trail, m.prefix...)
	s.onTry = func(r int) { s.trail = append(s.trail, r) }
	s.onUndo = func(int) { s.trail = s.trail[:len(s.trail)-1] }

	return s
}

// Next resumes the search and returns the next solution as a fresh row-id
// slice (preselection prefix included), or (nil, false) once the space is
// exhausted. After exhaustion every further call returns (nil, false).
func (s *Stream) Next() ([]int, bool) {
	if s.done {
		return nil, false
	}

	// First pull: the matrix may already be solved (everything preselected
	// or no required columns at all) or already dead.
	if !s.entered {
		s.entered = true
		col := s.m.mostConstrained()
		if col == rootSlot {
			s.finish()

			return s.snapshot(), true
		}
		if col == noColumn {
			s.finish()

			return nil, false
		}
		s.push(col)
	}

	for {
		top := len(s.stack) - 1

		// 1. Undo the previous trial at this level, unless the frame was
		// just pushed and still points at its header.
		if s.m.cells[s.stack[top].cell].row != headerRow {
			s.m.uncover(s.stack[top].cell, s.onUndo)
		}

		// 2. Advance to the next candidate row in the column's ring
		next := s.m.cells[s.stack[top].cell].link[down]
		if next == s.stack[top].col {
			// 3a. Column exhausted: restore it, pop, and terminate the
			// whole search when the stack empties
			s.m.unhideColumn(s.stack[top].col)
			s.stack = s.stack[:top]
			if top == 0 {
				s.finish()

				return nil, false
			}

			continue
		}

		// 3b. Try the row: cover it, then either yield a full solution or
		// descend into the next most-constrained column
		s.stack[top].cell = next
		s.m.cover(next, s.onTry)

		col := s.m.mostConstrained()
		if col == rootSlot {
			return s.snapshot(), true
		}
		if col != noColumn {
			s.push(col)
		}
	}
}

// push opens a new search level on col and hides it.
func (s *Stream) push(col int) {
	s.stack = append(s.stack, frame{col: col, cell: col})
	s.m.hideColumn(col)
}

// snapshot copies the current trail; the trail itself keeps mutating as the
// search resumes.
func (s *Stream) snapshot() []int {
	out := make([]int, len(s.trail))
	copy(out, s.trail)

	return out
}

// finish marks both the stream and the matrix as done.
func (s *Stream) finish() {
	s.done = true
	s.m.stage = stageDone
}
