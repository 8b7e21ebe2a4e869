package store

import "database/sql"

// InsertEvent appends an event row and returns its id. The Timestamp field
// must already be set; events are never mutated after insert.
func (db *DB) InsertEvent(e *Event) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO events
		(session_id, hook_type, tool_name, tool_input, tool_output, exit_code, success, cwd, project, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.HookType, e.ToolName, e.ToolInput, e.ToolOutput,
		e.ExitCode, e.Success, e.CWD, e.Project, e.Timestamp,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetEvents returns events matching the filter, ordered by timestamp
// ascending. Sequence analysis depends on this ordering.
func (db *DB) GetEvents(filter EventFilter) ([]Event, error) {
	query := "SELECT id, session_id, hook_type, tool_name, tool_input, tool_output, exit_code, success, cwd, project, timestamp FROM events WHERE 1=1"
	var args []any
	if filter.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, filter.SessionID)
	}
	if filter.HookType != "" {
		query += " AND hook_type = ?"
		args = append(args, filter.HookType)
	}
	if filter.ToolName != "" {
		query += " AND tool_name = ?"
		args = append(args, filter.ToolName)
	}
	query += " ORDER BY timestamp ASC"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func scanEvent(rows *sql.Rows) (Event, error) {
	var e Event
	err := rows.Scan(
		&e.ID, &e.SessionID, &e.HookType, &e.ToolName, &e.ToolInput,
		&e.ToolOutput, &e.ExitCode, &e.Success, &e.CWD, &e.Project, &e.Timestamp,
	)
	return e, err
}
