// Package dashboard serves the local stats API over HTTP.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/bashstats/internal/engine"
	"github.com/blackwell-systems/bashstats/internal/store"
)

// Server exposes the stats, achievement, and activity views as a JSON API.
// It binds to loopback only; the dashboard is a local tool, not a service.
type Server struct {
	db           *store.DB
	stats        *engine.StatsEngine
	achievements *engine.AchievementEngine
	weekly       *engine.WeeklyEngine
	mux          *http.ServeMux
	addr         string
	version      string
}

// New returns a Server bound to addr (host:port).
func New(db *store.DB, addr, version string) *Server {
	s := &Server{
		db:           db,
		stats:        engine.NewStatsEngine(db),
		achievements: engine.NewAchievementEngine(db),
		weekly:       engine.NewWeeklyEngine(db),
		mux:          http.NewServeMux(),
		addr:         addr,
		version:      version,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/stats", s.handleStats)
	s.mux.HandleFunc("GET /api/achievements", s.handleAchievements)
	s.mux.HandleFunc("GET /api/activity", s.handleActivity)
	s.mux.HandleFunc("GET /api/sessions", s.handleSessions)
	s.mux.HandleFunc("GET /api/agents", s.handleAgents)
	s.mux.HandleFunc("GET /api/weekly", s.handleWeekly)
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("dashboard listen on %s: %w", s.addr, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Handler returns the route mux, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// agentParam reads the optional ?agent= filter. Unknown agents come back as a
// usable filter string anyway; they simply match no sessions.
func agentParam(r *http.Request) string {
	return r.URL.Query().Get("agent")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": s.version})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	all, err := s.stats.GetAllStats(agentParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	payload, err := s.achievements.GetAchievementsPayload(agentParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch achievements")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	days := 365
	if q := r.URL.Query().Get("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}
	activity, err := s.db.GetAllDailyActivity(days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch activity")
		return
	}
	if activity == nil {
		activity = []store.DailyActivity{}
	}
	writeJSON(w, http.StatusOK, activity)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.db.GetRecentSessions(100)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch sessions")
		return
	}
	if sessions == nil {
		sessions = []store.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	breakdown, err := s.stats.GetAgentBreakdown()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch agent breakdown")
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	payload, err := s.weekly.GetWeeklyGoalsPayload()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch weekly goals")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}
