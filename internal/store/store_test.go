package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func TestMigrateCreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{
		"events", "sessions", "prompts", "daily_activity",
		"achievement_unlocks", "metadata", "weekly_goals", "weekly_xp",
	} {
		var name string
		row := db.Conn().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table)
		require.NoError(t, row.Scan(&name), "table %s should exist", table)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.InsertSession("s1", "claude-code", "2026-08-01T10:00:00.000", strPtr("myproj")))

	// Duplicate insert keeps the original started_at.
	require.NoError(t, db.InsertSession("s1", "claude-code", "2026-08-01T11:00:00.000", nil))

	s, err := db.GetSession("s1")
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, "2026-08-01T10:00:00.000", s.StartedAt)
	require.Equal(t, "myproj", *s.Project)
	require.Nil(t, s.DurationSeconds)

	require.NoError(t, db.IncrementSessionCounters("s1", CounterIncrements{Prompts: 2, Tools: 5, Errors: 1}))
	require.NoError(t, db.IncrementSessionCounters("s1", CounterIncrements{Tools: 1}))

	duration := int64(3600)
	require.NoError(t, db.UpdateSession("s1", SessionUpdate{
		EndedAt:         strPtr("2026-08-01T11:00:00.000"),
		StopReason:      strPtr("stopped"),
		DurationSeconds: &duration,
	}))
	require.NoError(t, db.UpdateSessionTokens("s1", TokenUsage{InputTokens: 100, OutputTokens: 200}))

	s, err = db.GetSession("s1")
	require.NoError(t, err)
	require.Equal(t, 2, s.PromptCount)
	require.Equal(t, 6, s.ToolCount)
	require.Equal(t, 1, s.ErrorCount)
	require.Equal(t, int64(3600), *s.DurationSeconds)
	require.Equal(t, int64(100), s.InputTokens)
	require.Equal(t, int64(200), s.OutputTokens)
}

func TestGetSessionMissing(t *testing.T) {
	db := openTestDB(t)
	s, err := db.GetSession("nope")
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestEventOrderingAndFilter(t *testing.T) {
	db := openTestDB(t)

	bash := "Bash"
	read := "Read"
	for _, e := range []Event{
		{SessionID: "s1", HookType: "PostToolUse", ToolName: &read, Timestamp: "2026-08-01T10:00:02.000"},
		{SessionID: "s1", HookType: "PostToolUse", ToolName: &bash, Timestamp: "2026-08-01T10:00:01.000"},
		{SessionID: "s2", HookType: "SessionStart", Timestamp: "2026-08-01T10:00:03.000"},
	} {
		e := e
		_, err := db.InsertEvent(&e)
		require.NoError(t, err)
	}

	events, err := db.GetEvents(EventFilter{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Ordered by timestamp, not insert order.
	require.Equal(t, "Bash", *events[0].ToolName)
	require.Equal(t, "Read", *events[1].ToolName)

	events, err = db.GetEvents(EventFilter{ToolName: "Bash"})
	require.NoError(t, err)
	require.Len(t, events, 1)

	events, err = db.GetEvents(EventFilter{HookType: "SessionStart"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "s2", events[0].SessionID)
}

func TestDailyActivityAdditiveUpsert(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.IncrementDailyActivity("2026-08-01", DailyIncrements{Sessions: 1, Prompts: 3}))
	require.NoError(t, db.IncrementDailyActivity("2026-08-01", DailyIncrements{Prompts: 2, ToolCalls: 7, DurationSeconds: 60}))

	d, err := db.GetDailyActivity("2026-08-01")
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, 1, d.Sessions)
	require.Equal(t, 5, d.Prompts)
	require.Equal(t, 7, d.ToolCalls)
	require.Equal(t, int64(60), d.DurationSeconds)

	missing, err := db.GetDailyActivity("2026-08-02")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestInsertUnlockIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.InsertUnlock("first_prompt", 1))

	unlocks, err := db.GetUnlocks()
	require.NoError(t, err)
	require.Len(t, unlocks, 1)
	original := unlocks[0].UnlockedAt

	// Second insert must not duplicate or touch the timestamp.
	require.NoError(t, db.InsertUnlock("first_prompt", 1))

	unlocks, err = db.GetUnlocks()
	require.NoError(t, err)
	require.Len(t, unlocks, 1)
	require.Equal(t, original, unlocks[0].UnlockedAt)
	require.False(t, unlocks[0].Notified)

	require.NoError(t, db.MarkNotified("first_prompt", 1))
	unnotified, err := db.GetUnnotifiedUnlocks()
	require.NoError(t, err)
	require.Empty(t, unnotified)
}

func TestMetadataRoundTrip(t *testing.T) {
	db := openTestDB(t)

	v, err := db.GetMetadata("absent")
	require.NoError(t, err)
	require.Equal(t, "", v)

	require.NoError(t, db.SetMetadata("install_date", "2026-08-01"))
	require.NoError(t, db.SetMetadata("install_date", "2026-08-02"))

	v, err = db.GetMetadata("install_date")
	require.NoError(t, err)
	require.Equal(t, "2026-08-02", v)
}

func TestWeeklyGoalsAndXP(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.InsertWeeklyGoal("2026-08-24", "prompt_burst", 150))
	require.NoError(t, db.InsertWeeklyGoal("2026-08-24", "prompt_burst", 150))
	require.NoError(t, db.CompleteWeeklyGoal("2026-08-24", "prompt_burst"))

	goals, err := db.GetWeeklyGoals("2026-08-24")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.True(t, goals[0].Completed)
	require.Equal(t, 150, goals[0].XPReward)

	require.NoError(t, db.UpsertWeeklyXP("2026-08-24", 100, 1.2, 50))
	require.NoError(t, db.UpsertWeeklyXP("2026-08-24", 200, 1.4, 150))

	w, err := db.GetWeeklyXP("2026-08-24")
	require.NoError(t, err)
	require.Equal(t, 200, w.BaseXP)
	require.InDelta(t, 1.4, w.Multiplier, 1e-9)
	require.Equal(t, 150, w.BonusXP)
}

func TestResetWipesEverything(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.InsertSession("s1", "claude-code", "2026-08-01T10:00:00.000", nil))
	_, err := db.InsertEvent(&Event{SessionID: "s1", HookType: "SessionStart", Timestamp: "2026-08-01T10:00:00.000"})
	require.NoError(t, err)
	require.NoError(t, db.InsertUnlock("first_prompt", 1))

	require.NoError(t, db.Reset())

	s, err := db.GetSession("s1")
	require.NoError(t, err)
	require.Nil(t, s)

	unlocks, err := db.GetUnlocks()
	require.NoError(t, err)
	require.Empty(t, unlocks)
}
