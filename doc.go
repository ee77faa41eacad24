// Package dlx solves exact-cover problems with Knuth's Dancing Links
// technique — a toroidal sparse boolean matrix held as circular
// doubly-linked rings, where removing and restoring whole regions of the
// matrix costs O(1) per link and backtracking undoes mutations in exact
// reverse order.
//
// 🚀 What is dlx?
//
//	A small, focused library built around one engine and a few callers:
//		• matrix/    — the sparse matrix engine: Declare / MarkOptional /
//		  Preselect construction, cover/uncover + hide/unhide primitives,
//		  most-constrained-column search, and two enumeration drivers
//		  (callback-driven and lazy pull-based)
//		• setcover/  — a tiny set/map-based exact-cover solver, handy as a
//		  readable reference and as a test oracle (not performance-oriented)
//		• queens/    — N-Queens encoder on top of the engine
//		• sudoku/    — classic 9×9 Sudoku encoder with preselected givens
//		• pentomino/ — 6×10 pentomino tilings, streamed lazily
//		• cmd/dlx    — a demo CLI rendering solutions for all three puzzles
//
// ✨ Why choose dlx?
//
//   - Exhaustive and exact – enumerates every cover, never misses one
//   - Deterministic – fixed ring order gives reproducible solution order
//   - Two delivery modes – synchronous callbacks, or pull one solution
//     at a time and stop whenever you have enough
//   - Pure Go core – the engine itself has no third-party dependencies
//
// An exact cover selects a subset of rows so that every required column is
// covered by exactly one selected row, and every optional column by at most
// one. The encoders show the standard trick: translate board geometry into
// Declare(column, row) calls, let the engine search, and map each returned
// row id back onto the board.
//
// Start with matrix.New, or read queens/queens.go for the smallest
// real-world encoding.
//
//	go get github.com/katalvlaran/dlx
package dlx
