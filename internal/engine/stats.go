package engine

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/blackwell-systems/bashstats/internal/store"
)

// StatsEngine computes aggregate views over the event log. It is a stateless
// reader; every method takes the agent filter as a parameter so differently
// scoped queries can run concurrently.
type StatsEngine struct {
	db *store.DB
}

// NewStatsEngine returns a StatsEngine reading from db.
func NewStatsEngine(db *store.DB) *StatsEngine {
	return &StatsEngine{db: db}
}

// agentCond returns a SQL fragment filtering on the sessions alias "s",
// plus its bind arguments. Empty agent means no filtering.
func agentCond(agent string) (string, []any) {
	if agent == "" {
		return "", nil
	}
	return " AND s.agent = ?", []any{agent}
}

// scalar runs a single-value aggregate query, mapping NULL and no-rows
// results to zero. Only infrastructure failures surface as errors.
func (e *StatsEngine) scalar(query string, args ...any) (int64, error) {
	var v sql.NullInt64
	err := e.db.Conn().QueryRow(query, args...).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("scalar query: %w", err)
	}
	return v.Int64, nil
}

// scalarFloat is scalar for floating-point aggregates such as AVG.
func (e *StatsEngine) scalarFloat(query string, args ...any) (float64, error) {
	var v sql.NullFloat64
	err := e.db.Conn().QueryRow(query, args...).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("scalar query: %w", err)
	}
	return v.Float64, nil
}

// toolCount counts successful invocations of the named tools.
func (e *StatsEngine) toolCount(agent string, tools ...string) (int64, error) {
	cond, _ := agentCond(agent)
	placeholders := ""
	args := make([]any, 0, len(tools)+1)
	for i, t := range tools {
		if i > 0 {
			placeholders += ","
		}
		placeholders += "?"
		args = append(args, t)
	}
	if agent != "" {
		args = append(args, agent)
	}
	q := `SELECT COUNT(*) FROM events e
		JOIN sessions s ON e.session_id = s.id
		WHERE e.hook_type = 'PostToolUse'
		  AND (e.success IS NULL OR e.success = 1)
		  AND e.tool_name IN (` + placeholders + `)` + cond
	return e.scalar(q, args...)
}

// commitSummaryRe matches the shortstat summary git prints after a commit.
// Insertion and deletion clauses are both optional.
var commitSummaryRe = regexp.MustCompile(`(\d+) files? changed(?:, (\d+) insertions?\(\+\))?(?:, (\d+) deletions?\(-\))?`)

// commitStats scans bash events whose command text contains "git commit"
// and totals commits and parsed line diffs. Output that does not match the
// summary pattern still counts as a commit with zero lines changed.
func (e *StatsEngine) commitStats(agent string) (commits, added, removed int64, err error) {
	cond, args := agentCond(agent)
	q := `SELECT e.tool_output FROM events e
		JOIN sessions s ON e.session_id = s.id
		WHERE e.hook_type = 'PostToolUse'
		  AND e.tool_name = 'Bash'
		  AND e.tool_input LIKE '%git commit%'` + cond
	rows, qerr := e.db.Conn().Query(q, args...)
	if qerr != nil {
		return 0, 0, 0, fmt.Errorf("commit scan: %w", qerr)
	}
	defer rows.Close()

	for rows.Next() {
		var out sql.NullString
		if err := rows.Scan(&out); err != nil {
			return 0, 0, 0, err
		}
		commits++
		if !out.Valid {
			continue
		}
		m := commitSummaryRe.FindStringSubmatch(out.String)
		if m == nil {
			continue
		}
		added += atoiSafe(m[2])
		removed += atoiSafe(m[3])
	}
	return commits, added, removed, rows.Err()
}

func atoiSafe(s string) int64 {
	var n int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int64(c-'0')
	}
	return n
}

// GetLifetimeStats aggregates counts and sums across the whole log.
func (e *StatsEngine) GetLifetimeStats(agent string) (*LifetimeStats, error) {
	cond, args := agentCond(agent)
	ls := &LifetimeStats{}

	var err error
	if ls.TotalSessions, err = e.scalar(`SELECT COUNT(*) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if ls.TotalDurationSeconds, err = e.scalar(`SELECT SUM(s.duration_seconds) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if ls.TotalPrompts, err = e.scalar(`SELECT COUNT(*) FROM prompts p JOIN sessions s ON p.session_id = s.id WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if ls.TotalCharsTyped, err = e.scalar(`SELECT SUM(p.char_count) FROM prompts p JOIN sessions s ON p.session_id = s.id WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if ls.TotalToolCalls, err = e.scalar(`SELECT COUNT(*) FROM events e JOIN sessions s ON e.session_id = s.id
		WHERE e.hook_type IN ('PostToolUse', 'PostToolUseFailure')`+cond, args...); err != nil {
		return nil, err
	}

	if ls.TotalFilesRead, err = e.toolCount(agent, "Read"); err != nil {
		return nil, err
	}
	if ls.TotalFilesWritten, err = e.toolCount(agent, "Write"); err != nil {
		return nil, err
	}
	if ls.TotalFilesEdited, err = e.toolCount(agent, "Edit", "MultiEdit", "NotebookEdit"); err != nil {
		return nil, err
	}
	if ls.TotalBashCommands, err = e.toolCount(agent, "Bash"); err != nil {
		return nil, err
	}
	if ls.TotalWebSearches, err = e.toolCount(agent, "WebSearch"); err != nil {
		return nil, err
	}
	if ls.TotalWebFetches, err = e.toolCount(agent, "WebFetch"); err != nil {
		return nil, err
	}

	// Distinct file paths ever written, as opposed to raw Write calls.
	if ls.TotalFilesCreated, err = e.scalar(`SELECT COUNT(DISTINCT json_extract(e.tool_input, '$.file_path'))
		FROM events e JOIN sessions s ON e.session_id = s.id
		WHERE e.hook_type = 'PostToolUse' AND e.tool_name = 'Write'
		  AND (e.success IS NULL OR e.success = 1)`+cond, args...); err != nil {
		return nil, err
	}

	if ls.TotalSubagents, err = e.scalar(`SELECT COUNT(*) FROM events e JOIN sessions s ON e.session_id = s.id
		WHERE e.hook_type = 'SubagentStart'`+cond, args...); err != nil {
		return nil, err
	}
	if ls.TotalCompactions, err = e.scalar(`SELECT COUNT(*) FROM events e JOIN sessions s ON e.session_id = s.id
		WHERE e.hook_type = 'PreCompact'`+cond, args...); err != nil {
		return nil, err
	}

	// Errors cover explicit tool failures plus error-flavored notifications.
	// Rate limits are the stricter subset of notifications.
	if ls.TotalErrors, err = e.scalar(`SELECT COUNT(*) FROM events e JOIN sessions s ON e.session_id = s.id
		WHERE (e.hook_type = 'PostToolUseFailure'
		   OR (e.hook_type = 'PostToolUse' AND e.success = 0)
		   OR (e.hook_type = 'Notification' AND (COALESCE(e.tool_input, '') LIKE '%"notification_type":"error"%'
		       OR COALESCE(e.tool_input, '') LIKE '%"notification_type":"rate_limit"%')))`+cond, args...); err != nil {
		return nil, err
	}
	if ls.TotalRateLimits, err = e.scalar(`SELECT COUNT(*) FROM events e JOIN sessions s ON e.session_id = s.id
		WHERE e.hook_type = 'Notification'
		  AND COALESCE(e.tool_input, '') LIKE '%"notification_type":"rate_limit"%'`+cond, args...); err != nil {
		return nil, err
	}

	if ls.TotalInputTokens, err = e.scalar(`SELECT SUM(s.input_tokens) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if ls.TotalOutputTokens, err = e.scalar(`SELECT SUM(s.output_tokens) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if ls.TotalCacheCreationTokens, err = e.scalar(`SELECT SUM(s.cache_creation_input_tokens) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if ls.TotalCacheReadTokens, err = e.scalar(`SELECT SUM(s.cache_read_input_tokens) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	ls.TotalTokens = ls.TotalInputTokens + ls.TotalOutputTokens + ls.TotalCacheCreationTokens + ls.TotalCacheReadTokens

	if ls.TotalCommits, ls.TotalLinesAdded, ls.TotalLinesRemoved, err = e.commitStats(agent); err != nil {
		return nil, err
	}

	return ls, nil
}

// GetToolBreakdown maps each tool name to its successful invocation count.
func (e *StatsEngine) GetToolBreakdown(agent string) (ToolBreakdown, error) {
	cond, args := agentCond(agent)
	q := `SELECT e.tool_name, COUNT(*) FROM events e
		JOIN sessions s ON e.session_id = s.id
		WHERE e.hook_type = 'PostToolUse'
		  AND (e.success IS NULL OR e.success = 1)
		  AND e.tool_name IS NOT NULL` + cond + `
		GROUP BY e.tool_name`
	rows, err := e.db.Conn().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("tool breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := ToolBreakdown{}
	for rows.Next() {
		var name string
		var count int64
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		breakdown[name] = count
	}
	return breakdown, rows.Err()
}

// activeDates returns every calendar date with any recorded activity,
// ascending. Daily rollups do not record agent identity.
func (e *StatsEngine) activeDates() ([]string, error) {
	rows, err := e.db.Conn().Query(`SELECT date FROM daily_activity
		WHERE sessions > 0 OR prompts > 0 OR tool_calls > 0
		ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("active dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// computeStreaks derives the longest and current consecutive-date runs from
// an ascending list of active dates. The current streak walks backward from
// today, falling back to yesterday so a day with no activity yet does not
// zero out a streak still in progress.
func computeStreaks(dates []string, today time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	// Parse at UTC midnight so DST transitions never produce a 23h or 25h
	// gap between consecutive calendar dates.
	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.ParseInLocation("2006-01-02", d, time.UTC)
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
	}
	if len(parsed) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	for i := 1; i < len(parsed); i++ {
		if parsed[i].Sub(parsed[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	active := make(map[string]bool, len(dates))
	for _, d := range dates {
		active[d] = true
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if !active[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}
	for active[day.Format("2006-01-02")] {
		current++
		day = day.AddDate(0, 0, -1)
	}

	return current, longest
}

// GetTimeStats computes streaks and time-of-day statistics. Streak and
// busiest-date fields ignore the agent filter.
func (e *StatsEngine) GetTimeStats(agent string) (*TimeStats, error) {
	ts := &TimeStats{}

	dates, err := e.activeDates()
	if err != nil {
		return nil, err
	}
	ts.CurrentStreak, ts.LongestStreak = computeStreaks(dates, time.Now())

	cond, args := agentCond(agent)

	// Prompt timestamps store local wall time, so the hour substring is
	// already in the user's timezone.
	row := e.db.Conn().QueryRow(`SELECT CAST(substr(p.timestamp, 12, 2) AS INTEGER) AS hour, COUNT(*) AS n
		FROM prompts p JOIN sessions s ON p.session_id = s.id
		WHERE 1=1`+cond+`
		GROUP BY hour ORDER BY n DESC, hour ASC LIMIT 1`, args...)
	if err := row.Scan(&ts.PeakHour, &ts.PeakHourCount); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("peak hour: %w", err)
	}

	if ts.NightOwlCount, err = e.scalar(`SELECT COUNT(*) FROM prompts p JOIN sessions s ON p.session_id = s.id
		WHERE CAST(substr(p.timestamp, 12, 2) AS INTEGER) < 5`+cond, args...); err != nil {
		return nil, err
	}
	if ts.EarlyBirdCount, err = e.scalar(`SELECT COUNT(*) FROM prompts p JOIN sessions s ON p.session_id = s.id
		WHERE CAST(substr(p.timestamp, 12, 2) AS INTEGER) BETWEEN 5 AND 7`+cond, args...); err != nil {
		return nil, err
	}
	if ts.WeekendSessions, err = e.scalar(`SELECT COUNT(*) FROM sessions s
		WHERE strftime('%w', substr(s.started_at, 1, 10)) IN ('0', '6')`+cond, args...); err != nil {
		return nil, err
	}

	row = e.db.Conn().QueryRow(`SELECT CAST(strftime('%w', substr(s.started_at, 1, 10)) AS INTEGER) AS dow, COUNT(*) AS n
		FROM sessions s WHERE 1=1`+cond+`
		GROUP BY dow ORDER BY n DESC, dow ASC LIMIT 1`, args...)
	var dowCount int64
	if err := row.Scan(&ts.MostActiveDay, &dowCount); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("most active day: %w", err)
	}

	row = e.db.Conn().QueryRow(`SELECT date, sessions + prompts + tool_calls AS score
		FROM daily_activity ORDER BY score DESC, date ASC LIMIT 1`)
	if err := row.Scan(&ts.BusiestDate, &ts.BusiestDateCount); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("busiest date: %w", err)
	}

	return ts, nil
}

// GetSessionRecords computes per-session extremes and averages.
func (e *StatsEngine) GetSessionRecords(agent string) (*SessionRecords, error) {
	cond, args := agentCond(agent)
	sr := &SessionRecords{}

	var err error
	if sr.LongestSessionSeconds, err = e.scalar(`SELECT MAX(s.duration_seconds) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if sr.FastestSessionSeconds, err = e.scalar(`SELECT MIN(s.duration_seconds) FROM sessions s
		WHERE s.duration_seconds > 0`+cond, args...); err != nil {
		return nil, err
	}
	if sr.MostToolsInSession, err = e.scalar(`SELECT MAX(s.tool_count) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if sr.MostPromptsInSession, err = e.scalar(`SELECT MAX(s.prompt_count) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if sr.AvgDurationSeconds, err = e.scalar(`SELECT CAST(AVG(s.duration_seconds) AS INTEGER) FROM sessions s
		WHERE s.duration_seconds IS NOT NULL`+cond, args...); err != nil {
		return nil, err
	}
	if sr.AvgPromptsPerSession, err = e.scalarFloat(`SELECT AVG(s.prompt_count) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if sr.AvgToolsPerSession, err = e.scalarFloat(`SELECT AVG(s.tool_count) FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if sr.MostTokensInSession, err = e.scalar(`SELECT MAX(s.input_tokens + s.output_tokens + s.cache_creation_input_tokens + s.cache_read_input_tokens)
		FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}
	if sr.AvgTokensPerSession, err = e.scalar(`SELECT CAST(AVG(s.input_tokens + s.output_tokens + s.cache_creation_input_tokens + s.cache_read_input_tokens) AS INTEGER)
		FROM sessions s WHERE 1=1`+cond, args...); err != nil {
		return nil, err
	}

	return sr, nil
}

// GetProjectStats computes the per-project session breakdown.
func (e *StatsEngine) GetProjectStats(agent string) (*ProjectStats, error) {
	cond, args := agentCond(agent)
	q := `SELECT s.project, COUNT(*) AS n FROM sessions s
		WHERE s.project IS NOT NULL AND s.project != ''` + cond + `
		GROUP BY s.project ORDER BY n DESC, s.project ASC`
	rows, err := e.db.Conn().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}
	defer rows.Close()

	ps := &ProjectStats{ProjectBreakdown: map[string]int64{}}
	for rows.Next() {
		var project string
		var count int64
		if err := rows.Scan(&project, &count); err != nil {
			return nil, err
		}
		if ps.MostVisitedProject == "" {
			ps.MostVisitedProject = project
			ps.MostVisitedProjectCount = count
		}
		ps.ProjectBreakdown[project] = count
	}
	ps.UniqueProjects = int64(len(ps.ProjectBreakdown))
	return ps, rows.Err()
}

// GetAllStats bundles the five aggregate views for one agent scope.
func (e *StatsEngine) GetAllStats(agent string) (*AllStats, error) {
	lifetime, err := e.GetLifetimeStats(agent)
	if err != nil {
		return nil, err
	}
	tools, err := e.GetToolBreakdown(agent)
	if err != nil {
		return nil, err
	}
	timeStats, err := e.GetTimeStats(agent)
	if err != nil {
		return nil, err
	}
	sessions, err := e.GetSessionRecords(agent)
	if err != nil {
		return nil, err
	}
	projects, err := e.GetProjectStats(agent)
	if err != nil {
		return nil, err
	}

	return &AllStats{
		Lifetime: *lifetime,
		Tools:    tools,
		Time:     *timeStats,
		Sessions: *sessions,
		Projects: *projects,
	}, nil
}

// GetAgentBreakdown summarizes how sessions and hours split across agents.
func (e *StatsEngine) GetAgentBreakdown() (*AgentBreakdown, error) {
	rows, err := e.db.Conn().Query(`SELECT agent, COUNT(*), COALESCE(SUM(duration_seconds), 0)
		FROM sessions GROUP BY agent`)
	if err != nil {
		return nil, fmt.Errorf("agent breakdown: %w", err)
	}
	defer rows.Close()

	ab := &AgentBreakdown{
		SessionsPerAgent: map[string]int64{},
		HoursPerAgent:    map[string]float64{},
	}
	var favoriteCount int64
	for rows.Next() {
		var agent string
		var count, seconds int64
		if err := rows.Scan(&agent, &count, &seconds); err != nil {
			return nil, err
		}
		ab.SessionsPerAgent[agent] = count
		ab.HoursPerAgent[agent] = float64(seconds) / 3600.0
		if count > favoriteCount {
			favoriteCount = count
			ab.FavoriteAgent = agent
		}
	}
	ab.DistinctAgents = int64(len(ab.SessionsPerAgent))
	return ab, rows.Err()
}
