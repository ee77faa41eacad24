package queens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dlx/queens"
)

// knownCounts holds the classic n-queens solution counts.
var knownCounts = map[int]int{
	1: 1,
	2: 0,
	3: 0,
	4: 2,
	5: 10,
	6: 4,
	7: 40,
	8: 92,
}

func TestCount_KnownValues(t *testing.T) {
	for n, want := range knownCounts {
		got, err := queens.Count(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestPlacements_FourQueens(t *testing.T) {
	sols, err := queens.Placements(4)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{1, 3, 0, 2}, {2, 0, 3, 1}}, sols)
}

func TestPlacements_AreNonAttacking(t *testing.T) {
	const n = 6
	sols, err := queens.Placements(n)
	require.NoError(t, err)
	require.Len(t, sols, knownCounts[n])

	for _, p := range sols {
		require.Len(t, p, n)
		for r1 := 0; r1 < n; r1++ {
			for r2 := r1 + 1; r2 < n; r2++ {
				assert.NotEqual(t, p[r1], p[r2], "same file")
				assert.NotEqual(t, r2-r1, p[r2]-p[r1], "same backslash diagonal")
				assert.NotEqual(t, r1-r2, p[r2]-p[r1], "same slash diagonal")
			}
		}
	}
}

func TestPlacements_CountAgreement(t *testing.T) {
	sols, err := queens.Placements(7)
	require.NoError(t, err)
	count, err := queens.Count(7)
	require.NoError(t, err)
	assert.Len(t, sols, count)
}

func TestBadSize(t *testing.T) {
	_, err := queens.Placements(0)
	assert.ErrorIs(t, err, queens.ErrBadSize)
	_, err = queens.Count(-3)
	assert.ErrorIs(t, err, queens.ErrBadSize)
}
