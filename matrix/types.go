// Package matrix defines the cell arena, stage machine, and hook types
// shared by the builder, mutation, and search layers of the engine.
package matrix

import "math"

// Ring directions. Each cell participates in two circular rings: a column
// ring (up/down) and a row ring (left/right).
const (
	up = iota
	down
	left
	right
)

// headerRow marks column headers and the root sentinel, which own no row.
// It doubles as the root's live-count so the root is never selected as the
// most-constrained column.
const headerRow = math.MaxInt

// rootSlot is the arena slot reserved for the root sentinel; it anchors the
// ring of active (required, unhidden) column headers.
const rootSlot = 0

// noColumn is returned by the column-selection scan when some active column
// has live-count zero: the current branch cannot be completed.
const noColumn = -1

// cell is one arena slot: either a "1" entry of the sparse matrix, a column
// header, or the root sentinel. Links hold arena indices; an isolated ring
// is self-linked.
type cell struct {
	link  [4]int
	row   int // owning row id; headerRow for headers and the root
	col   int // owning column id; meaningless for headers and the root
	count int // live cells in the column ring; headers and the root only
}

// stage is the monotonically advancing build-then-solve marker. Every public
// operation asserts the stage it requires and advances the marker; calling
// an operation out of order is a fatal contract violation.
type stage int

const (
	stageBuild     stage = iota // Declare
	stageOptional               // MarkOptional
	stagePreselect              // Preselect
	stageSolve                  // Solve / Solutions in flight
	stageDone                   // enumeration finished
)

// String reports the stage name used in stage-violation panic messages.
func (s stage) String() string {
	switch s {
	case stageBuild:
		return "construction"
	case stageOptional:
		return "optional-marking"
	case stagePreselect:
		return "preselection"
	case stageSolve:
		return "solving"
	case stageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Hooks carries the caller-supplied notifications for the callback driver.
// OnTry reports a row tentatively added to the partial solution, OnUndo
// reports it withdrawn during backtracking, and OnComplete fires once per
// full solution with no further mutation in between. Nil fields are
// treated as no-ops.
type Hooks struct {
	OnTry      func(row int)
	OnUndo     func(row int)
	OnComplete func()
}

// normalized returns a copy of h with nil hooks replaced by no-ops, so the
// search loops never branch on nil.
func (h Hooks) normalized() Hooks {
	if h.OnTry == nil {
		h.OnTry = func(int) {}
	}
	if h.OnUndo == nil {
		h.OnUndo = func(int) {}
	}
	if h.OnComplete == nil {
		h.OnComplete = func() {}
	}

	return h
}
