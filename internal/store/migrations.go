package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id  TEXT NOT NULL,
			hook_type   TEXT NOT NULL,
			tool_name   TEXT,
			tool_input  TEXT,
			tool_output TEXT,
			exit_code   INTEGER,
			success     INTEGER,
			cwd         TEXT,
			project     TEXT,
			timestamp   TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id                          TEXT PRIMARY KEY,
			agent                       TEXT NOT NULL DEFAULT 'claude-code',
			started_at                  TEXT NOT NULL,
			ended_at                    TEXT,
			stop_reason                 TEXT,
			prompt_count                INTEGER DEFAULT 0,
			tool_count                  INTEGER DEFAULT 0,
			error_count                 INTEGER DEFAULT 0,
			project                     TEXT,
			duration_seconds            INTEGER,
			input_tokens                INTEGER DEFAULT 0,
			output_tokens               INTEGER DEFAULT 0,
			cache_creation_input_tokens INTEGER DEFAULT 0,
			cache_read_input_tokens     INTEGER DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS prompts (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id  TEXT NOT NULL,
			content     TEXT NOT NULL,
			char_count  INTEGER NOT NULL,
			word_count  INTEGER NOT NULL,
			timestamp   TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS daily_activity (
			date                        TEXT PRIMARY KEY,
			sessions                    INTEGER DEFAULT 0,
			prompts                     INTEGER DEFAULT 0,
			tool_calls                  INTEGER DEFAULT 0,
			errors                      INTEGER DEFAULT 0,
			duration_seconds            INTEGER DEFAULT 0,
			input_tokens                INTEGER DEFAULT 0,
			output_tokens               INTEGER DEFAULT 0,
			cache_creation_input_tokens INTEGER DEFAULT 0,
			cache_read_input_tokens     INTEGER DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS achievement_unlocks (
			badge_id    TEXT NOT NULL,
			tier        INTEGER NOT NULL,
			unlocked_at TEXT NOT NULL,
			notified    INTEGER DEFAULT 0,
			PRIMARY KEY (badge_id, tier)
		)`,

		`CREATE TABLE IF NOT EXISTS metadata (
			key   TEXT PRIMARY KEY,
			value TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS weekly_goals (
			week_start   TEXT NOT NULL,
			challenge_id TEXT NOT NULL,
			completed    INTEGER DEFAULT 0,
			xp_reward    INTEGER NOT NULL,
			PRIMARY KEY (week_start, challenge_id)
		)`,

		`CREATE TABLE IF NOT EXISTS weekly_xp (
			week_start TEXT PRIMARY KEY,
			base_xp    INTEGER DEFAULT 0,
			multiplier REAL DEFAULT 1.0,
			bonus_xp   INTEGER DEFAULT 0
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_hook_type ON events(hook_type)`,
		`CREATE INDEX IF NOT EXISTS idx_events_tool_name ON events(tool_name)`,
		`CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_events_project ON events(project)`,
		`CREATE INDEX IF NOT EXISTS idx_prompts_session ON prompts(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_prompts_timestamp ON prompts(timestamp)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
