package store

// InsertUnlock records that a badge tier has been reached. The insert is
// idempotent: reaching the same tier again neither duplicates the row nor
// disturbs the original unlock timestamp.
func (db *DB) InsertUnlock(badgeID string, tier int) error {
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO achievement_unlocks (badge_id, tier, unlocked_at) VALUES (?, ?, ?)",
		badgeID, tier, localNow(),
	)
	return err
}

// GetUnlocks returns all unlock rows, most recent first.
func (db *DB) GetUnlocks() ([]AchievementUnlock, error) {
	return db.queryUnlocks("SELECT badge_id, tier, unlocked_at, notified FROM achievement_unlocks ORDER BY unlocked_at DESC")
}

// GetUnnotifiedUnlocks returns unlock rows not yet surfaced to the user.
func (db *DB) GetUnnotifiedUnlocks() ([]AchievementUnlock, error) {
	return db.queryUnlocks("SELECT badge_id, tier, unlocked_at, notified FROM achievement_unlocks WHERE notified = 0")
}

// MarkNotified flags an unlock row as surfaced.
func (db *DB) MarkNotified(badgeID string, tier int) error {
	_, err := db.conn.Exec(
		"UPDATE achievement_unlocks SET notified = 1 WHERE badge_id = ? AND tier = ?",
		badgeID, tier,
	)
	return err
}

func (db *DB) queryUnlocks(query string) ([]AchievementUnlock, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []AchievementUnlock
	for rows.Next() {
		var u AchievementUnlock
		var notified int
		if err := rows.Scan(&u.BadgeID, &u.Tier, &u.UnlockedAt, &notified); err != nil {
			return nil, err
		}
		u.Notified = notified != 0
		unlocks = append(unlocks, u)
	}
	return unlocks, rows.Err()
}
