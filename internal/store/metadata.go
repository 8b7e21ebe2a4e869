package store

import "database/sql"

// SetMetadata stores a string key/value pair, replacing any existing value.
func (db *DB) SetMetadata(key, value string) error {
	_, err := db.conn.Exec("INSERT OR REPLACE INTO metadata (key, value) VALUES (?, ?)", key, value)
	return err
}

// GetMetadata returns the value for a key, or "" if the key is absent.
func (db *DB) GetMetadata(key string) (string, error) {
	row := db.conn.QueryRow("SELECT value FROM metadata WHERE key = ?", key)
	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
