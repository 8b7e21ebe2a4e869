package store

import (
	"database/sql"
	"strings"
)

// sessionColumns is the column list shared by every session SELECT.
const sessionColumns = `id, agent, started_at, ended_at, stop_reason,
	prompt_count, tool_count, error_count, project, duration_seconds,
	input_tokens, output_tokens, cache_creation_input_tokens, cache_read_input_tokens`

// InsertSession creates a session row if one does not already exist.
// Duplicate session-start hooks (resume, clear) are ignored so the original
// started_at is preserved.
func (db *DB) InsertSession(id, agent, startedAt string, project *string) error {
	if agent == "" {
		agent = "claude-code"
	}
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO sessions (id, agent, started_at, project) VALUES (?, ?, ?, ?)",
		id, agent, startedAt, project,
	)
	return err
}

// GetSession returns a session by id, or nil if it does not exist.
func (db *DB) GetSession(id string) (*Session, error) {
	row := db.conn.QueryRow("SELECT "+sessionColumns+" FROM sessions WHERE id = ?", id)
	var s Session
	err := row.Scan(
		&s.ID, &s.Agent, &s.StartedAt, &s.EndedAt, &s.StopReason,
		&s.PromptCount, &s.ToolCount, &s.ErrorCount, &s.Project, &s.DurationSeconds,
		&s.InputTokens, &s.OutputTokens, &s.CacheCreationInputTokens, &s.CacheReadInputTokens,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetRecentSessions returns up to limit sessions ordered by start descending.
func (db *DB) GetRecentSessions(limit int) ([]Session, error) {
	rows, err := db.conn.Query(
		"SELECT "+sessionColumns+" FROM sessions ORDER BY started_at DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID, &s.Agent, &s.StartedAt, &s.EndedAt, &s.StopReason,
			&s.PromptCount, &s.ToolCount, &s.ErrorCount, &s.Project, &s.DurationSeconds,
			&s.InputTokens, &s.OutputTokens, &s.CacheCreationInputTokens, &s.CacheReadInputTokens,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// UpdateSession applies session finalization fields. Nil fields are skipped.
func (db *DB) UpdateSession(id string, update SessionUpdate) error {
	var sets []string
	var args []any
	if update.EndedAt != nil {
		sets = append(sets, "ended_at = ?")
		args = append(args, *update.EndedAt)
	}
	if update.StopReason != nil {
		sets = append(sets, "stop_reason = ?")
		args = append(args, *update.StopReason)
	}
	if update.DurationSeconds != nil {
		sets = append(sets, "duration_seconds = ?")
		args = append(args, *update.DurationSeconds)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := db.conn.Exec("UPDATE sessions SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

// UpdateSessionTokens attaches the four token totals to a session.
func (db *DB) UpdateSessionTokens(id string, tokens TokenUsage) error {
	_, err := db.conn.Exec(
		`UPDATE sessions SET input_tokens = ?, output_tokens = ?,
		cache_creation_input_tokens = ?, cache_read_input_tokens = ? WHERE id = ?`,
		tokens.InputTokens, tokens.OutputTokens,
		tokens.CacheCreationInputTokens, tokens.CacheReadInputTokens, id,
	)
	return err
}

// IncrementSessionCounters bumps the running counters on an open session.
// Counters are monotonically non-decreasing during the session's lifetime.
func (db *DB) IncrementSessionCounters(id string, inc CounterIncrements) error {
	var sets []string
	var args []any
	if inc.Prompts != 0 {
		sets = append(sets, "prompt_count = prompt_count + ?")
		args = append(args, inc.Prompts)
	}
	if inc.Tools != 0 {
		sets = append(sets, "tool_count = tool_count + ?")
		args = append(args, inc.Tools)
	}
	if inc.Errors != 0 {
		sets = append(sets, "error_count = error_count + ?")
		args = append(args, inc.Errors)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := db.conn.Exec("UPDATE sessions SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}
