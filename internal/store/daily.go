package store

import "database/sql"

// IncrementDailyActivity adds the given increments to the date's counters,
// creating the row if it does not exist. The upsert is additive so counters
// only ever increase for a given date.
func (db *DB) IncrementDailyActivity(date string, inc DailyIncrements) error {
	_, err := db.conn.Exec(
		`INSERT INTO daily_activity
		(date, sessions, prompts, tool_calls, errors, duration_seconds,
		 input_tokens, output_tokens, cache_creation_input_tokens, cache_read_input_tokens)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			sessions = sessions + excluded.sessions,
			prompts = prompts + excluded.prompts,
			tool_calls = tool_calls + excluded.tool_calls,
			errors = errors + excluded.errors,
			duration_seconds = duration_seconds + excluded.duration_seconds,
			input_tokens = input_tokens + excluded.input_tokens,
			output_tokens = output_tokens + excluded.output_tokens,
			cache_creation_input_tokens = cache_creation_input_tokens + excluded.cache_creation_input_tokens,
			cache_read_input_tokens = cache_read_input_tokens + excluded.cache_read_input_tokens`,
		date, inc.Sessions, inc.Prompts, inc.ToolCalls, inc.Errors, inc.DurationSeconds,
		inc.InputTokens, inc.OutputTokens, inc.CacheCreationInputTokens, inc.CacheReadInputTokens,
	)
	return err
}

// GetDailyActivity returns the rollup row for a date, or nil if absent.
func (db *DB) GetDailyActivity(date string) (*DailyActivity, error) {
	row := db.conn.QueryRow(
		`SELECT date, sessions, prompts, tool_calls, errors, duration_seconds,
		input_tokens, output_tokens, cache_creation_input_tokens, cache_read_input_tokens
		FROM daily_activity WHERE date = ?`, date,
	)
	var d DailyActivity
	err := row.Scan(
		&d.Date, &d.Sessions, &d.Prompts, &d.ToolCalls, &d.Errors, &d.DurationSeconds,
		&d.InputTokens, &d.OutputTokens, &d.CacheCreationInputTokens, &d.CacheReadInputTokens,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetAllDailyActivity returns daily rollups ordered by date descending.
// A limit of 0 returns every row.
func (db *DB) GetAllDailyActivity(limit int) ([]DailyActivity, error) {
	query := `SELECT date, sessions, prompts, tool_calls, errors, duration_seconds,
		input_tokens, output_tokens, cache_creation_input_tokens, cache_read_input_tokens
		FROM daily_activity ORDER BY date DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []DailyActivity
	for rows.Next() {
		var d DailyActivity
		if err := rows.Scan(
			&d.Date, &d.Sessions, &d.Prompts, &d.ToolCalls, &d.Errors, &d.DurationSeconds,
			&d.InputTokens, &d.OutputTokens, &d.CacheCreationInputTokens, &d.CacheReadInputTokens,
		); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
