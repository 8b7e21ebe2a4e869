package store

import "database/sql"

// InsertWeeklyGoal records a challenge selected for a week. Re-selecting the
// same challenge for the same week is a no-op.
func (db *DB) InsertWeeklyGoal(weekStart, challengeID string, xpReward int) error {
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO weekly_goals (week_start, challenge_id, xp_reward) VALUES (?, ?, ?)",
		weekStart, challengeID, xpReward,
	)
	return err
}

// CompleteWeeklyGoal marks a week's challenge as completed.
func (db *DB) CompleteWeeklyGoal(weekStart, challengeID string) error {
	_, err := db.conn.Exec(
		"UPDATE weekly_goals SET completed = 1 WHERE week_start = ? AND challenge_id = ?",
		weekStart, challengeID,
	)
	return err
}

// GetWeeklyGoals returns the challenges recorded for a week.
func (db *DB) GetWeeklyGoals(weekStart string) ([]WeeklyGoal, error) {
	rows, err := db.conn.Query(
		"SELECT week_start, challenge_id, completed, xp_reward FROM weekly_goals WHERE week_start = ?",
		weekStart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []WeeklyGoal
	for rows.Next() {
		var g WeeklyGoal
		var completed int
		if err := rows.Scan(&g.WeekStart, &g.ChallengeID, &completed, &g.XPReward); err != nil {
			return nil, err
		}
		g.Completed = completed != 0
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// UpsertWeeklyXP caches the XP breakdown for a week, replacing any prior value.
func (db *DB) UpsertWeeklyXP(weekStart string, baseXP int, multiplier float64, bonusXP int) error {
	_, err := db.conn.Exec(
		`INSERT INTO weekly_xp (week_start, base_xp, multiplier, bonus_xp) VALUES (?, ?, ?, ?)
		ON CONFLICT(week_start) DO UPDATE SET base_xp = excluded.base_xp,
			multiplier = excluded.multiplier, bonus_xp = excluded.bonus_xp`,
		weekStart, baseXP, multiplier, bonusXP,
	)
	return err
}

// GetWeeklyXP returns the cached XP breakdown for a week, or nil if absent.
func (db *DB) GetWeeklyXP(weekStart string) (*WeeklyXP, error) {
	row := db.conn.QueryRow(
		"SELECT week_start, base_xp, multiplier, bonus_xp FROM weekly_xp WHERE week_start = ?",
		weekStart,
	)
	var w WeeklyXP
	err := row.Scan(&w.WeekStart, &w.BaseXP, &w.Multiplier, &w.BonusXP)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}
