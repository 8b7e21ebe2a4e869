package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/bashstats/internal/store"
)

func openTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func findBadge(t *testing.T, badges []BadgeResult, id string) BadgeResult {
	t.Helper()
	for _, b := range badges {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %q not in results", id)
	return BadgeResult{}
}

func TestEvaluateTierMonotonic(t *testing.T) {
	def := BadgeDefinition{ID: "test", Stat: "x", Tiers: [5]int64{10, 20, 50, 100, 200}}

	prevTier := 0
	for v := int64(0); v <= 250; v++ {
		tier, progress, _ := Evaluate(def, v)
		require.GreaterOrEqual(t, tier, prevTier, "value %d", v)
		require.GreaterOrEqual(t, tier, 0)
		require.LessOrEqual(t, tier, 5)
		require.GreaterOrEqual(t, progress, 0.0, "value %d", v)
		require.LessOrEqual(t, progress, 1.0, "value %d", v)
		prevTier = tier
	}
}

func TestEvaluateBoundaries(t *testing.T) {
	def := BadgeDefinition{ID: "test", Stat: "x", Tiers: [5]int64{10, 20, 50, 100, 200}}

	tier, progress, maxed := Evaluate(def, 200)
	require.Equal(t, 5, tier)
	require.Equal(t, 1.0, progress)
	require.True(t, maxed)

	tier, progress, maxed = Evaluate(def, 199)
	require.Equal(t, 4, tier)
	require.False(t, maxed)
	require.GreaterOrEqual(t, progress, 0.0)
	require.LessOrEqual(t, progress, 0.99)

	tier, progress, _ = Evaluate(def, 0)
	require.Equal(t, 0, tier)
	require.Equal(t, 0.0, progress)
}

func TestEvaluateSecretAndAspirational(t *testing.T) {
	secret := BadgeDefinition{ID: "s", Stat: "x", Tiers: [5]int64{1, 1, 1, 1, 1}, Secret: true}

	tier, _, _ := Evaluate(secret, 0)
	require.Equal(t, 0, tier)
	tier, progress, maxed := Evaluate(secret, 1)
	require.Equal(t, 1, tier)
	require.Equal(t, 1.0, progress)
	require.True(t, maxed)

	asp := BadgeDefinition{ID: "a", Stat: "x", Tiers: [5]int64{100, 100, 100, 100, 100}, Aspirational: true}

	tier, progress, _ = Evaluate(asp, 99)
	require.Equal(t, 0, tier, "aspirational badges never award intermediate tiers")
	require.LessOrEqual(t, progress, 0.99)
	tier, progress, maxed = Evaluate(asp, 100)
	require.Equal(t, 5, tier)
	require.Equal(t, 1.0, progress)
	require.True(t, maxed)
}

func TestEmptyStoreAllZero(t *testing.T) {
	db := openTestDB(t)
	stats := NewStatsEngine(db)

	all, err := stats.GetAllStats("")
	require.NoError(t, err)
	require.Zero(t, all.Lifetime.TotalSessions)
	require.Zero(t, all.Lifetime.TotalPrompts)
	require.Zero(t, all.Lifetime.TotalTokens)
	require.Zero(t, all.Time.CurrentStreak)
	require.Zero(t, all.Time.LongestStreak)
	require.Zero(t, all.Sessions.LongestSessionSeconds)
	require.Zero(t, all.Projects.UniqueProjects)
	require.Empty(t, all.Tools)

	engine := NewAchievementEngine(db)
	badges, err := engine.ComputeBadges("")
	require.NoError(t, err)
	require.Len(t, badges, len(BadgeCatalog))
	for _, b := range badges {
		require.Zero(t, b.Tier, "badge %s", b.ID)
		require.False(t, b.Unlocked, "badge %s", b.ID)
	}
}

func TestFirstPromptScenario(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))
	_, err := db.InsertPrompt(&store.Prompt{
		SessionID: "s1", Content: "hello", CharCount: 5, WordCount: 1,
		Timestamp: "2026-08-01T10:00:01.000",
	})
	require.NoError(t, err)

	engine := NewAchievementEngine(db)
	badges, err := engine.ComputeBadges("")
	require.NoError(t, err)

	badge := findBadge(t, badges, "first_prompt")
	require.Equal(t, 1, badge.Tier)
	require.Equal(t, "Bronze", badge.TierName)
	require.EqualValues(t, 1, badge.Value)
	require.True(t, badge.Unlocked)

	xp, err := engine.ComputeXP("")
	require.NoError(t, err)
	require.Greater(t, xp.TotalXP, int64(0))
}

func TestGeminiSessionsScenario(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("g%d", i)
		ts := fmt.Sprintf("2026-08-%02dT09:00:00.000", i+1)
		require.NoError(t, db.InsertSession(id, AgentGeminiCLI, ts, nil))
	}

	engine := NewAchievementEngine(db)
	badges, err := engine.ComputeBadges("")
	require.NoError(t, err)

	badge := findBadge(t, badges, "gemini_whisperer")
	require.EqualValues(t, 10, badge.Value)
	require.Equal(t, 1, badge.Tier)
}

func TestAgentHopperScenario(t *testing.T) {
	db := openTestDB(t)
	for day := 3; day <= 7; day++ {
		date := fmt.Sprintf("2026-08-%02d", day)
		require.NoError(t, db.InsertSession("c"+date, AgentClaudeCode, date+"T09:00:00.000", nil))
		require.NoError(t, db.InsertSession("g"+date, AgentGeminiCLI, date+"T14:00:00.000", nil))
	}

	engine := NewAchievementEngine(db)
	flat, _, err := engine.flattenStats("")
	require.NoError(t, err)
	require.EqualValues(t, 5, flat["doubleAgentDays"])
	require.EqualValues(t, 5, flat["agentSwitchDays"])
	require.Equal(t, flat["doubleAgentDays"], flat["agentSwitchDays"])

	badges, err := engine.computeBadgesFromFlat(flat)
	require.NoError(t, err)
	badge := findBadge(t, badges, "agent_hopper")
	require.Equal(t, 2, badge.Tier)
	require.Equal(t, "Silver", badge.TierName)
}

func TestSecretBadgesStayLocked(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))

	secrets := 0
	for _, def := range BadgeCatalog {
		if def.Secret {
			secrets++
		}
	}
	require.Equal(t, SecretBadgeCount, secrets)

	engine := NewAchievementEngine(db)
	badges, err := engine.ComputeBadges("")
	require.NoError(t, err)
	for _, b := range badges {
		// launch_day fires on the very first session; everything else
		// secret needs criteria this log does not meet.
		if b.Secret && b.ID != "launch_day" {
			require.False(t, b.Unlocked, "badge %s", b.ID)
		}
	}
}

func TestComputeXPDeterministic(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))
	for i := 0; i < 20; i++ {
		_, err := db.InsertPrompt(&store.Prompt{
			SessionID: "s1", Content: fmt.Sprintf("prompt %d", i), CharCount: 10, WordCount: 2,
			Timestamp: fmt.Sprintf("2026-08-01T10:%02d:00.000", i),
		})
		require.NoError(t, err)
	}

	engine := NewAchievementEngine(db)
	first, err := engine.ComputeXP("")
	require.NoError(t, err)
	second, err := engine.ComputeXP("")
	require.NoError(t, err)
	require.Equal(t, first.TotalXP, second.TotalXP)
	require.Equal(t, first.RankNumber, second.RankNumber)
}

func TestUnlockBackfill(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))
	for i := 0; i < 100; i++ {
		_, err := db.InsertPrompt(&store.Prompt{
			SessionID: "s1", Content: fmt.Sprintf("p%d", i), CharCount: 3, WordCount: 1,
			Timestamp: fmt.Sprintf("2026-08-01T10:%02d:%02d.000", i/60, i%60),
		})
		require.NoError(t, err)
	}

	engine := NewAchievementEngine(db)
	badges, err := engine.ComputeBadges("")
	require.NoError(t, err)
	require.Equal(t, 2, findBadge(t, badges, "first_prompt").Tier)

	unlocks, err := db.GetUnlocks()
	require.NoError(t, err)
	tiers := map[int]bool{}
	for _, u := range unlocks {
		if u.BadgeID == "first_prompt" {
			tiers[u.Tier] = true
		}
	}
	require.True(t, tiers[1], "tier 1 backfilled")
	require.True(t, tiers[2], "tier 2 recorded")
	require.False(t, tiers[3])
}
