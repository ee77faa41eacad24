// Package matrix implements the Dancing Links sparse matrix engine for
// exact-cover problems: a toroidal boolean matrix kept as circular
// doubly-linked rings, a reversible cover/uncover mutation layer, and an
// exhaustive backtracking search with two delivery modes.
//
// What:
//
//   - SparseMatrix holds one "1" cell per declared (column, row) condition
//     in an arena of slots; links are stable arena indices, not pointers.
//   - Declare / MarkOptional / Preselect build the matrix under a strict
//     build-then-solve stage machine.
//   - Solve(hooks) enumerates every exact cover synchronously, reporting
//     row trials, undos, and completed solutions through injected hooks.
//   - Solutions() returns a lazy Stream; each Next() call resumes the
//     search exactly where it stopped and yields one full solution.
//
// Why:
//
//   - Exact-cover search spends all its time removing and restoring rows;
//     ring splicing makes both O(1) per link with perfect undo.
//   - The most-constrained-column heuristic prunes dead branches the moment
//     any required column runs out of candidate rows.
//
// Complexity:
//
//   - Declare: O(column height + row width) due to sorted ring insertion.
//   - hide/unhide, cover/uncover: O(cells touched), each link O(1).
//   - Search: output-sensitive; worst case exponential in rows, as exact
//     cover is NP-complete. Both drivers produce identical solution order.
//
// Errors:
//
//	The engine returns no errors. Stage violations (calling an operation
//	out of build order, or starting a second solve) and undeclared ids are
//	caller bugs and panic immediately; duplicate Declare and Preselect
//	calls are silent no-ops; an unsatisfiable matrix is a normal outcome
//	that simply enumerates zero solutions.
package matrix
