package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/bashstats/internal/store"
)

func TestWeekStartMondayAnchored(t *testing.T) {
	// 2026-08-24 is a Monday.
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		require.Equal(t, "2026-08-24", WeekStart(day).Format("2006-01-02"), "offset %d", offset)
	}
	require.Equal(t, "2026-08-17", WeekStart(monday.AddDate(0, 0, -1)).Format("2006-01-02"))
}

func TestSelectChallengesDeterministic(t *testing.T) {
	first := SelectChallenges("2026-08-24")
	second := SelectChallenges("2026-08-24")
	require.Len(t, first, weeklyPick)

	seen := map[string]bool{}
	for i := range first {
		require.Equal(t, first[i].ID, second[i].ID)
		require.False(t, seen[first[i].ID], "no repeats within one week")
		seen[first[i].ID] = true
	}

	// Different weeks should not all collapse to one fixed selection.
	varied := false
	for _, ws := range []string{"2026-08-31", "2026-09-07", "2026-09-14", "2026-09-21"} {
		other := SelectChallenges(ws)
		for i := range other {
			if other[i].ID != first[i].ID {
				varied = true
			}
		}
	}
	require.True(t, varied)
}

func TestWeeklyGoalsPayload(t *testing.T) {
	db := openTestDB(t)
	engine := NewWeeklyEngine(db)

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	engine.now = func() time.Time { return now }

	// Activity on three days of the current week.
	for day := 24; day <= 26; day++ {
		date := time.Date(2026, 8, day, 0, 0, 0, 0, time.Local).Format("2006-01-02")
		require.NoError(t, db.IncrementDailyActivity(date, store.DailyIncrements{Prompts: 5}))
	}

	payload, err := engine.GetWeeklyGoalsPayload()
	require.NoError(t, err)
	require.Equal(t, "2026-08-24", payload.WeekStart)
	require.Equal(t, 3, payload.DaysActive)
	require.Equal(t, dayMultipliers[3], payload.Multiplier)
	require.Len(t, payload.Challenges, weeklyPick)

	for _, c := range payload.Challenges {
		require.GreaterOrEqual(t, c.Progress, 0.0)
		require.LessOrEqual(t, c.Progress, 1.0)
	}

	// Selected goals are persisted for the week.
	goals, err := db.GetWeeklyGoals("2026-08-24")
	require.NoError(t, err)
	require.Len(t, goals, weeklyPick)

	// Scoring again is idempotent.
	again, err := engine.GetWeeklyGoalsPayload()
	require.NoError(t, err)
	require.Equal(t, payload.WeekStart, again.WeekStart)
	goals, err = db.GetWeeklyGoals("2026-08-24")
	require.NoError(t, err)
	require.Len(t, goals, weeklyPick)
}

func TestWeeklyEmptyStore(t *testing.T) {
	db := openTestDB(t)
	engine := NewWeeklyEngine(db)

	payload, err := engine.GetWeeklyGoalsPayload()
	require.NoError(t, err)
	require.Zero(t, payload.DaysActive)
	require.Equal(t, 1.0, payload.Multiplier)
	require.Len(t, payload.Challenges, weeklyPick)
	for _, c := range payload.Challenges {
		require.False(t, c.Completed)
		require.Zero(t, c.Current)
	}
}
