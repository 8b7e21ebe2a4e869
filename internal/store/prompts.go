package store

// InsertPrompt appends a prompt row and returns its id.
func (db *DB) InsertPrompt(p *Prompt) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO prompts (session_id, content, char_count, word_count, timestamp) VALUES (?, ?, ?, ?, ?)",
		p.SessionID, p.Content, p.CharCount, p.WordCount, p.Timestamp,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetPrompts returns all prompts for a session, ordered by timestamp ascending.
func (db *DB) GetPrompts(sessionID string) ([]Prompt, error) {
	rows, err := db.conn.Query(
		"SELECT id, session_id, content, char_count, word_count, timestamp FROM prompts WHERE session_id = ? ORDER BY timestamp ASC",
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prompts []Prompt
	for rows.Next() {
		var p Prompt
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Content, &p.CharCount, &p.WordCount, &p.Timestamp); err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}
