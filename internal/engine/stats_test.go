package engine

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/bashstats/internal/store"
)

func TestComputeStreaks(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 0, 0, 0, time.Local)

	current, longest := computeStreaks(nil, today)
	require.Zero(t, current)
	require.Zero(t, longest)

	// Five consecutive days with gaps on both sides.
	dates := []string{"2026-08-01", "2026-08-10", "2026-08-11", "2026-08-12", "2026-08-13", "2026-08-14", "2026-08-20"}
	current, longest = computeStreaks(dates, today)
	require.Equal(t, 5, longest)
	require.Zero(t, current, "no activity near today")

	// A streak running up through today.
	dates = []string{"2026-08-26", "2026-08-27", "2026-08-28"}
	current, longest = computeStreaks(dates, today)
	require.Equal(t, 3, longest)
	require.Equal(t, 3, current)

	// Today quiet so far, streak ended yesterday: still counts.
	dates = []string{"2026-08-25", "2026-08-26", "2026-08-27"}
	current, _ = computeStreaks(dates, today)
	require.Equal(t, 3, current)
}

func TestStreaksFromDailyActivity(t *testing.T) {
	db := openTestDB(t)
	today := time.Now()
	for i := 0; i < 4; i++ {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		require.NoError(t, db.IncrementDailyActivity(date, store.DailyIncrements{Sessions: 1}))
	}

	stats := NewStatsEngine(db)
	ts, err := stats.GetTimeStats("")
	require.NoError(t, err)
	require.Equal(t, 4, ts.CurrentStreak)
	require.Equal(t, 4, ts.LongestStreak)
}

func TestCommitParsing(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))

	insert := func(input, output string, n int) {
		_, err := db.InsertEvent(&store.Event{
			SessionID: "s1", HookType: store.HookPostToolUse,
			ToolName: strPtr("Bash"), ToolInput: strPtr(input), ToolOutput: strPtr(output),
			Timestamp: fmt.Sprintf("2026-08-01T10:00:%02d.000", n),
		})
		require.NoError(t, err)
	}

	insert(`{"command":"git commit -m 'feat'"}`, "2 files changed, 10 insertions(+), 3 deletions(-)", 1)
	insert(`{"command":"git commit -m 'tiny'"}`, "1 file changed, 1 insertion(+)", 2)
	insert(`{"command":"git commit --amend"}`, "nothing recognizable here", 3)
	insert(`{"command":"ls -la"}`, "README.md", 4)

	stats := NewStatsEngine(db)
	ls, err := stats.GetLifetimeStats("")
	require.NoError(t, err)
	require.EqualValues(t, 3, ls.TotalCommits, "unparseable output still counts the commit")
	require.EqualValues(t, 11, ls.TotalLinesAdded)
	require.EqualValues(t, 3, ls.TotalLinesRemoved)
	require.EqualValues(t, 4, ls.TotalBashCommands)
}

func TestToolBreakdownCountsSuccessOnly(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))

	zero := 0
	one := 1
	events := []store.Event{
		{SessionID: "s1", HookType: store.HookPostToolUse, ToolName: strPtr("Read"), Success: &one, Timestamp: "2026-08-01T10:00:01.000"},
		{SessionID: "s1", HookType: store.HookPostToolUse, ToolName: strPtr("Read"), Success: &one, Timestamp: "2026-08-01T10:00:02.000"},
		{SessionID: "s1", HookType: store.HookPostToolUse, ToolName: strPtr("Edit"), Success: &zero, Timestamp: "2026-08-01T10:00:03.000"},
		{SessionID: "s1", HookType: store.HookPostToolUseFailure, ToolName: strPtr("Bash"), Timestamp: "2026-08-01T10:00:04.000"},
	}
	for i := range events {
		_, err := db.InsertEvent(&events[i])
		require.NoError(t, err)
	}

	stats := NewStatsEngine(db)
	breakdown, err := stats.GetToolBreakdown("")
	require.NoError(t, err)
	require.EqualValues(t, 2, breakdown["Read"])
	require.NotContains(t, breakdown, "Edit")
	require.NotContains(t, breakdown, "Bash")

	ls, err := stats.GetLifetimeStats("")
	require.NoError(t, err)
	require.EqualValues(t, 4, ls.TotalToolCalls)
	require.EqualValues(t, 2, ls.TotalErrors)
}

func TestAgentFilterScopesQueries(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("c1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))
	require.NoError(t, db.InsertSession("g1", AgentGeminiCLI, "2026-08-02T10:00:00.000", nil))

	for _, p := range []struct{ session, ts string }{
		{"c1", "2026-08-01T10:01:00.000"},
		{"c1", "2026-08-01T10:02:00.000"},
		{"g1", "2026-08-02T10:01:00.000"},
	} {
		_, err := db.InsertPrompt(&store.Prompt{
			SessionID: p.session, Content: "hi", CharCount: 2, WordCount: 1, Timestamp: p.ts,
		})
		require.NoError(t, err)
	}

	stats := NewStatsEngine(db)
	all, err := stats.GetLifetimeStats("")
	require.NoError(t, err)
	require.EqualValues(t, 2, all.TotalSessions)
	require.EqualValues(t, 3, all.TotalPrompts)

	claude, err := stats.GetLifetimeStats(AgentClaudeCode)
	require.NoError(t, err)
	require.EqualValues(t, 1, claude.TotalSessions)
	require.EqualValues(t, 2, claude.TotalPrompts)

	gemini, err := stats.GetLifetimeStats(AgentGeminiCLI)
	require.NoError(t, err)
	require.EqualValues(t, 1, gemini.TotalPrompts)
}

func TestProjectStats(t *testing.T) {
	db := openTestDB(t)
	api := "api"
	web := "web"
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", &api))
	require.NoError(t, db.InsertSession("s2", AgentClaudeCode, "2026-08-02T10:00:00.000", &api))
	require.NoError(t, db.InsertSession("s3", AgentClaudeCode, "2026-08-03T10:00:00.000", &web))

	stats := NewStatsEngine(db)
	ps, err := stats.GetProjectStats("")
	require.NoError(t, err)
	require.EqualValues(t, 2, ps.UniqueProjects)
	require.Equal(t, "api", ps.MostVisitedProject)
	require.EqualValues(t, 2, ps.MostVisitedProjectCount)
	require.EqualValues(t, 1, ps.ProjectBreakdown["web"])
}

func TestAgentBreakdown(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("c1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))
	require.NoError(t, db.InsertSession("c2", AgentClaudeCode, "2026-08-02T10:00:00.000", nil))
	require.NoError(t, db.InsertSession("g1", AgentGeminiCLI, "2026-08-03T10:00:00.000", nil))

	stats := NewStatsEngine(db)
	ab, err := stats.GetAgentBreakdown()
	require.NoError(t, err)
	require.Equal(t, AgentClaudeCode, ab.FavoriteAgent)
	require.EqualValues(t, 2, ab.SessionsPerAgent[AgentClaudeCode])
	require.EqualValues(t, 2, ab.DistinctAgents)
}

func TestToolSequencePatterns(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))

	seq := []struct {
		hook, tool, input string
		fail              bool
	}{
		{hook: store.HookPostToolUse, tool: "Read", input: `{"file_path":"main.go"}`},
		{hook: store.HookPostToolUse, tool: "Edit", input: `{"file_path":"main.go"}`},
		{hook: store.HookPostToolUse, tool: "Bash", input: `{"command":"go build"}`},
		{hook: store.HookPostToolUseFailure, tool: "Bash", input: `{"command":"go test"}`},
		{hook: store.HookPostToolUse, tool: "Bash", input: `{"command":"go test"}`},
		{hook: store.HookPostToolUse, tool: "Edit", input: `{"file_path":"util.go"}`},
		{hook: store.HookPostToolUse, tool: "Edit", input: `{"file_path":"util.go"}`},
	}
	for i, ev := range seq {
		success := 1
		if ev.fail {
			success = 0
		}
		_, err := db.InsertEvent(&store.Event{
			SessionID: "s1", HookType: ev.hook, ToolName: strPtr(ev.tool),
			ToolInput: strPtr(ev.input), Success: &success,
			Timestamp: fmt.Sprintf("2026-08-01T10:00:%02d.000", i+1),
		})
		require.NoError(t, err)
	}

	engine := NewAchievementEngine(db)
	patterns, err := engine.computePatternStats("")
	require.NoError(t, err)

	require.EqualValues(t, 1, patterns["readEditBashCombos"])
	require.EqualValues(t, 1, patterns["errorRecoveryCount"], "Bash failure then Bash success")
	require.EqualValues(t, 1, patterns["backToBackSameFileEdits"])
	require.EqualValues(t, 2, patterns["maxSameFileEdits"], "util.go edited twice")
	require.EqualValues(t, 3, patterns["maxDistinctToolsInSession"])
}

func TestPromptPatterns(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))

	prompts := []struct{ content, ts string }{
		{"please fix the tests", "2026-08-01T10:01:00.000"},
		{"WHY IS THIS BROKEN", "2026-08-01T10:02:00.000"},
		{"what does this function do?", "2026-08-01T10:03:00.000"},
		{"please fix the tests", "2026-08-01T10:04:00.000"},
		{"1. first\n2. second\n3. third", "2026-08-01T10:05:00.000"},
		{"late night thought", "2026-08-02T03:10:00.000"},
	}
	for _, p := range prompts {
		_, err := db.InsertPrompt(&store.Prompt{
			SessionID: "s1", Content: p.content,
			CharCount: len(p.content), WordCount: 3, Timestamp: p.ts,
		})
		require.NoError(t, err)
	}

	engine := NewAchievementEngine(db)
	patterns, err := engine.computePatternStats("")
	require.NoError(t, err)

	require.EqualValues(t, 2, patterns["politePromptCount"])
	require.EqualValues(t, 1, patterns["allCapsPromptCount"])
	require.EqualValues(t, 1, patterns["questionPromptCount"])
	require.EqualValues(t, 1, patterns["numberedListPromptCount"])
	require.EqualValues(t, 2, patterns["mostRepeatedPromptCount"])
	require.EqualValues(t, 1, patterns["repeatedPromptCount"])
	require.EqualValues(t, 1, patterns["witchingHourPrompts"])
	require.EqualValues(t, 1, patterns["threeAmPrompt"])
}

func TestComputeStreaksSpansClockChange(t *testing.T) {
	// US clocks spring forward on 2026-03-08. Five consecutive active
	// dates across that Sunday must still read as a five-day run.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	dates := []string{"2026-03-06", "2026-03-07", "2026-03-08", "2026-03-09", "2026-03-10"}

	current, longest := computeStreaks(dates, today)
	require.Equal(t, 5, longest)
	require.Equal(t, 5, current)
}

func TestNightOwlEarlyBirdBuckets(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T00:00:00.000", nil))

	stamps := []string{
		"2026-08-01T00:30:00.000",
		"2026-08-01T04:30:00.000",
		"2026-08-01T05:10:00.000",
		"2026-08-01T07:59:00.000",
		"2026-08-01T08:10:00.000",
		"2026-08-01T23:00:00.000",
	}
	for i, ts := range stamps {
		_, err := db.InsertPrompt(&store.Prompt{
			SessionID: "s1", Content: fmt.Sprintf("p%d", i),
			CharCount: 2, WordCount: 1, Timestamp: ts,
		})
		require.NoError(t, err)
	}

	stats := NewStatsEngine(db)
	tm, err := stats.GetTimeStats("")
	require.NoError(t, err)
	require.EqualValues(t, 2, tm.NightOwlCount, "midnight through 4:59")
	require.EqualValues(t, 2, tm.EarlyBirdCount, "5:00 through 7:59")
}

func TestTinyPromptThreshold(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))

	for i, n := range []int{0, 4, 19, 20} {
		_, err := db.InsertPrompt(&store.Prompt{
			SessionID: "s1", Content: strings.Repeat("x", n),
			CharCount: n, WordCount: 1,
			Timestamp: fmt.Sprintf("2026-08-01T10:0%d:00.000", i),
		})
		require.NoError(t, err)
	}

	engine := NewAchievementEngine(db)
	patterns, err := engine.computePatternStats("")
	require.NoError(t, err)
	require.EqualValues(t, 2, patterns["tinyPromptCount"], "nonempty and under 20 chars")
}

func TestSessionDurationBuckets(t *testing.T) {
	db := openTestDB(t)
	sessions := []struct {
		id       string
		duration int64
		tools    int
	}{
		{"exact8h", 28800, 40},
		{"marathon", 28801, 40},
		{"speedrun", 20, 1},
	}
	for i, s := range sessions {
		started := fmt.Sprintf("2026-08-0%dT10:00:00.000", i+1)
		require.NoError(t, db.InsertSession(s.id, AgentClaudeCode, started, nil))
		d := s.duration
		require.NoError(t, db.UpdateSession(s.id, store.SessionUpdate{DurationSeconds: &d}))
		require.NoError(t, db.IncrementSessionCounters(s.id, store.CounterIncrements{Tools: s.tools}))
	}

	engine := NewAchievementEngine(db)
	patterns, err := engine.computePatternStats("")
	require.NoError(t, err)
	require.EqualValues(t, 1, patterns["longSessionCount"], "over eight hours, exclusive")
	require.EqualValues(t, 1, patterns["speedRunSession"])
}

func TestReadEditBashComboCountsEditVariants(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))

	one := 1
	for i, tool := range []string{"Read", "MultiEdit", "Bash"} {
		_, err := db.InsertEvent(&store.Event{
			SessionID: "s1", HookType: store.HookPostToolUse, ToolName: strPtr(tool),
			ToolInput: strPtr(`{}`), Success: &one,
			Timestamp: fmt.Sprintf("2026-08-01T10:00:%02d.000", i+1),
		})
		require.NoError(t, err)
	}

	engine := NewAchievementEngine(db)
	patterns, err := engine.computePatternStats("")
	require.NoError(t, err)
	require.EqualValues(t, 1, patterns["readEditBashCombos"])
}

func TestDangerousCommandBlocked(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertSession("s1", AgentClaudeCode, "2026-08-01T10:00:00.000", nil))

	_, err := db.InsertEvent(&store.Event{
		SessionID: "s1", HookType: store.HookPreToolUse, ToolName: strPtr("Bash"),
		ToolInput: strPtr(`{"command":"rm -rf build/"}`),
		Timestamp: "2026-08-01T10:00:01.000",
	})
	require.NoError(t, err)

	engine := NewAchievementEngine(db)
	patterns, err := engine.computePatternStats("")
	require.NoError(t, err)
	require.EqualValues(t, 1, patterns["dangerousCommandBlocked"])
	require.Zero(t, patterns["maxErrorsInSession"], "a pre-call check is not a tool error")
}
