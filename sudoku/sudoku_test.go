package sudoku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dlx/sudoku"
)

// wikiPuzzle is the classic puzzle from the Wikipedia Sudoku article.
var wikiPuzzle = sudoku.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// wikiSolution is its unique completion.
var wikiSolution = sudoku.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestSolve_WikipediaPuzzle(t *testing.T) {
	got, err := sudoku.Solve(wikiPuzzle)
	require.NoError(t, err)
	assert.Equal(t, wikiSolution, got)
}

func TestUnique_ProperPuzzle(t *testing.T) {
	unique, err := sudoku.Unique(wikiPuzzle)
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestUnique_EmptyGrid(t *testing.T) {
	unique, err := sudoku.Unique(sudoku.Grid{})
	require.NoError(t, err)
	assert.False(t, unique, "the empty grid has many completions")
}

func TestSolve_EmptyGrid_MultipleSolutions(t *testing.T) {
	_, err := sudoku.Solve(sudoku.Grid{})
	assert.ErrorIs(t, err, sudoku.ErrMultipleSolutions)
}

func TestSolve_CompletedGridRoundTrips(t *testing.T) {
	got, err := sudoku.Solve(wikiSolution)
	require.NoError(t, err)
	assert.Equal(t, wikiSolution, got)
}

func TestSolve_NoSolution(t *testing.T) {
	// Rank 0 pins digits 1..8; the 9 in rank 1 then blocks cell (0,8)
	// without ever conflicting pairwise.
	var g sudoku.Grid
	for file := 0; file < 8; file++ {
		g[0][file] = file + 1
	}
	g[1][8] = 9

	_, err := sudoku.Solve(g)
	assert.ErrorIs(t, err, sudoku.ErrNoSolution)
}

func TestSolve_BadGivens(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		var g sudoku.Grid
		g[4][4] = 10
		_, err := sudoku.Solve(g)
		assert.ErrorIs(t, err, sudoku.ErrBadGiven)
	})

	t.Run("duplicate in rank", func(t *testing.T) {
		var g sudoku.Grid
		g[2][0], g[2][7] = 5, 5
		_, err := sudoku.Solve(g)
		assert.ErrorIs(t, err, sudoku.ErrBadGiven)
	})

	t.Run("duplicate in box", func(t *testing.T) {
		var g sudoku.Grid
		g[0][0], g[1][1] = 3, 3
		_, err := sudoku.Solve(g)
		assert.ErrorIs(t, err, sudoku.ErrBadGiven)
	})
}
