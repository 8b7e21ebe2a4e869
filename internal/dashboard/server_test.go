package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/bashstats/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.DB) {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, "127.0.0.1:0", "1.0.0-test"), db
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "1.0.0-test", body["version"])
}

func TestStatsEndpointEmptyStore(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Lifetime struct {
			TotalSessions int64 `json:"totalSessions"`
		} `json:"lifetime"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Zero(t, body.Lifetime.TotalSessions)
}

func TestStatsEndpointAgentFilter(t *testing.T) {
	s, db := newTestServer(t)
	require.NoError(t, db.InsertSession("c1", "claude-code", "2026-08-01T10:00:00.000", nil))
	require.NoError(t, db.InsertSession("g1", "gemini-cli", "2026-08-01T11:00:00.000", nil))

	var body struct {
		Lifetime struct {
			TotalSessions int64 `json:"totalSessions"`
		} `json:"lifetime"`
	}

	rec := get(t, s, "/api/stats?agent=gemini-cli")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.EqualValues(t, 1, body.Lifetime.TotalSessions)

	rec = get(t, s, "/api/stats")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.EqualValues(t, 2, body.Lifetime.TotalSessions)
}

func TestAchievementsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/achievements")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Badges []json.RawMessage `json:"badges"`
		XP     struct {
			RankNumber int `json:"rankNumber"`
		} `json:"xp"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Badges)
	require.Zero(t, body.XP.RankNumber, "empty store is unranked")
}

func TestActivityEndpoint(t *testing.T) {
	s, db := newTestServer(t)
	require.NoError(t, db.IncrementDailyActivity("2026-08-27", store.DailyIncrements{Prompts: 3}))

	rec := get(t, s, "/api/activity")
	require.Equal(t, http.StatusOK, rec.Code)
	var body []store.DailyActivity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	require.Equal(t, 3, body[0].Prompts)

	rec = get(t, s, "/api/activity?days=bogus")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionsEndpoint(t *testing.T) {
	s, db := newTestServer(t)
	require.NoError(t, db.InsertSession("s1", "claude-code", "2026-08-01T10:00:00.000", nil))

	rec := get(t, s, "/api/sessions")
	require.Equal(t, http.StatusOK, rec.Code)
	var body []store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	require.Equal(t, "s1", body[0].ID)
}

func TestWeeklyEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/weekly")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Challenges []json.RawMessage `json:"challenges"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Challenges, 3)
}
