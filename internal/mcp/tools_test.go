package mcp

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/blackwell-systems/bashstats/internal/store"
)

func seedSession(t *testing.T, db *store.DB, id, agent string) {
	t.Helper()
	if err := db.InsertSession(id, agent, "2026-08-01T10:00:00.000", nil); err != nil {
		t.Fatalf("insert session: %v", err)
	}
}

func callText(t *testing.T, s *Server, handler toolHandler, args string) string {
	t.Helper()
	result, err := handler(json.RawMessage(args))
	if err != nil {
		t.Fatalf("tool handler: %v", err)
	}
	text, ok := result.(string)
	if !ok {
		t.Fatalf("expected text result, got %T", result)
	}
	return text
}

func TestOverviewEmptyStore(t *testing.T) {
	s := newEmptyServer(t)
	text := callText(t, s, s.handleOverview, `{}`)

	if !strings.HasPrefix(text, "Rank 0") {
		t.Errorf("expected unranked overview, got: %q", text)
	}
	if !strings.Contains(text, "0 sessions") {
		t.Errorf("expected zero session count, got: %q", text)
	}
}

func TestOverviewCountsSessions(t *testing.T) {
	s := newEmptyServer(t)
	seedSession(t, s.db, "s1", "claude-code")
	seedSession(t, s.db, "s2", "gemini-cli")

	text := callText(t, s, s.handleOverview, `{}`)
	if !strings.Contains(text, "2 sessions") {
		t.Errorf("expected 2 sessions in overview, got: %q", text)
	}

	filtered := callText(t, s, s.handleOverview, `{"agent":"gemini-cli"}`)
	if !strings.Contains(filtered, "1 sessions") {
		t.Errorf("expected agent filter to scope sessions, got: %q", filtered)
	}
}

func TestAchievementsReportsUnlocks(t *testing.T) {
	s := newEmptyServer(t)
	seedSession(t, s.db, "s1", "claude-code")
	if _, err := s.db.InsertPrompt(&store.Prompt{
		SessionID: "s1",
		Content:   "hello",
		CharCount: 5,
		WordCount: 1,
		Timestamp: "2026-08-01T10:00:01.000",
	}); err != nil {
		t.Fatalf("insert prompt: %v", err)
	}

	text := callText(t, s, s.handleAchievements, `{}`)
	if !strings.Contains(text, "Badges:") {
		t.Fatalf("expected badge summary, got: %q", text)
	}
	// One prompt unlocks the first badge tier, so the unlocked count is nonzero.
	if strings.HasPrefix(text, "Badges: 0 /") {
		t.Errorf("expected at least one unlocked badge, got: %q", text)
	}
	if !strings.Contains(text, "Closest to unlock:") {
		t.Errorf("expected closest-to-unlock section, got: %q", text)
	}
}

func TestGoalsListsThreeChallenges(t *testing.T) {
	s := newEmptyServer(t)
	text := callText(t, s, s.handleGoals, `{}`)

	if !strings.Contains(text, "Weekly Goals") {
		t.Fatalf("expected weekly goals header, got: %q", text)
	}
	if got := strings.Count(text, "[    ]") + strings.Count(text, "[DONE]"); got != 3 {
		t.Errorf("expected 3 challenge lines, got %d: %q", got, text)
	}
}
