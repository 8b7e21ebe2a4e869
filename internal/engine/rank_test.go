package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXPForRankMonotonic(t *testing.T) {
	prev := XPForRank(1)
	require.EqualValues(t, 0, prev)

	for r := 2; r <= MaxRank; r++ {
		cur := XPForRank(r)
		require.Greater(t, cur, prev, "rank %d", r)
		prev = cur
	}
}

func TestRankForXPRoundTrip(t *testing.T) {
	require.Equal(t, 0, RankForXP(0))
	require.Equal(t, 0, RankForXP(-5))
	require.Equal(t, 1, RankForXP(1))

	for _, r := range []int{1, 2, 10, 50, 137, 499, 500} {
		needed := XPForRank(r)
		if needed == 0 {
			needed = 1
		}
		require.Equal(t, r, RankForXP(needed), "exactly at rank %d threshold", r)
		if r < MaxRank {
			require.Equal(t, r, RankForXP(XPForRank(r+1)-1), "just below rank %d", r+1)
		}
	}

	// XP past the top of the curve stays at the ceiling.
	require.Equal(t, MaxRank, RankForXP(XPForRank(MaxRank)*10))
}

func TestBracketForRank(t *testing.T) {
	require.Equal(t, "Unranked", BracketForRank(0))
	require.Equal(t, "Bronze", BracketForRank(1))
	require.Equal(t, "Silver", BracketForRank(50))
	require.Equal(t, "Gold", BracketForRank(150))
	require.Equal(t, "Platinum", BracketForRank(250))
	require.Equal(t, "Diamond", BracketForRank(399))
	require.Equal(t, "Singularity", BracketForRank(499))
	require.Equal(t, "System Anomaly", BracketForRank(500))
}

func TestRankProgressBounds(t *testing.T) {
	require.Equal(t, 0.0, RankProgress(0))

	for _, xp := range []int64{1, 7, 100, 12345, XPForRank(250) + 1} {
		p := RankProgress(xp)
		require.GreaterOrEqual(t, p, 0.0, "xp %d", xp)
		require.LessOrEqual(t, p, 0.99, "xp %d", xp)
	}

	require.Equal(t, 1.0, RankProgress(XPForRank(MaxRank)))
}
