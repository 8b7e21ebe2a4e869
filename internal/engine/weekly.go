package engine

import (
	"hash/fnv"
	"math"
	"strconv"
	"time"

	"github.com/blackwell-systems/bashstats/internal/store"
)

// WeeklyChallenge is one pool entry. Current progress is computed by a
// per-stat query scoped to the week's date range.
type WeeklyChallenge struct {
	ID          string
	Description string
	Threshold   int64
	XPReward    int
	// query counts progress within [start, end), both date strings.
	query func(e *WeeklyEngine, start, end string) (int64, error)
}

// weeklyPick is how many challenges one week gets.
const weeklyPick = 3

// dayMultipliers maps days active in the week (1..7) to the XP multiplier.
var dayMultipliers = [8]float64{1.0, 1.0, 1.15, 1.3, 1.45, 1.6, 1.8, 2.0}

func eventCountQuery(where string) func(e *WeeklyEngine, start, end string) (int64, error) {
	return func(e *WeeklyEngine, start, end string) (int64, error) {
		return e.stats.scalar(`SELECT COUNT(*) FROM events e
			WHERE e.timestamp >= ? AND e.timestamp < ? AND `+where, start, end)
	}
}

// WeeklyPool is the challenge pool weeks draw from.
var WeeklyPool = []WeeklyChallenge{
	{ID: "prompt_week", Description: "Submit 50 prompts", Threshold: 50, XPReward: 100,
		query: func(e *WeeklyEngine, start, end string) (int64, error) {
			return e.stats.scalar(`SELECT COUNT(*) FROM prompts WHERE timestamp >= ? AND timestamp < ?`, start, end)
		}},
	{ID: "session_week", Description: "Start 10 sessions", Threshold: 10, XPReward: 100,
		query: func(e *WeeklyEngine, start, end string) (int64, error) {
			return e.stats.scalar(`SELECT COUNT(*) FROM sessions WHERE started_at >= ? AND started_at < ?`, start, end)
		}},
	{ID: "tool_week", Description: "Make 200 tool calls", Threshold: 200, XPReward: 150,
		query: eventCountQuery(`e.hook_type IN ('PostToolUse', 'PostToolUseFailure')`)},
	{ID: "commit_week", Description: "Land 5 commits", Threshold: 5, XPReward: 200,
		query: eventCountQuery(`e.hook_type = 'PostToolUse' AND e.tool_name = 'Bash' AND e.tool_input LIKE '%git commit%'`)},
	{ID: "perfect_week", Description: "Be active all 7 days", Threshold: 7, XPReward: 300,
		query: func(e *WeeklyEngine, start, end string) (int64, error) {
			return e.stats.scalar(`SELECT COUNT(*) FROM daily_activity
				WHERE date >= ? AND date < ? AND (sessions > 0 OR prompts > 0 OR tool_calls > 0)`, start, end)
		}},
	{ID: "search_week", Description: "Run 25 searches", Threshold: 25, XPReward: 100,
		query: eventCountQuery(`e.hook_type = 'PostToolUse' AND e.tool_name IN ('Grep', 'Glob', 'WebSearch')`)},
	{ID: "edit_week", Description: "Edit 50 files", Threshold: 50, XPReward: 150,
		query: eventCountQuery(`e.hook_type = 'PostToolUse' AND e.tool_name IN ('Edit', 'MultiEdit', 'NotebookEdit')`)},
	{ID: "read_week", Description: "Read 75 files", Threshold: 75, XPReward: 100,
		query: eventCountQuery(`e.hook_type = 'PostToolUse' AND e.tool_name = 'Read'`)},
	{ID: "bash_week", Description: "Run 50 shell commands", Threshold: 50, XPReward: 100,
		query: eventCountQuery(`e.hook_type = 'PostToolUse' AND e.tool_name = 'Bash'`)},
	{ID: "early_week", Description: "Prompt before 8am on 5 occasions", Threshold: 5, XPReward: 150,
		query: func(e *WeeklyEngine, start, end string) (int64, error) {
			return e.stats.scalar(`SELECT COUNT(*) FROM prompts
				WHERE timestamp >= ? AND timestamp < ?
				  AND CAST(substr(timestamp, 12, 2) AS INTEGER) < 8`, start, end)
		}},
	{ID: "subagent_week", Description: "Spawn 10 subagents", Threshold: 10, XPReward: 150,
		query: eventCountQuery(`e.hook_type = 'SubagentStart'`)},
	{ID: "shipping_week", Description: "Ship a pull request", Threshold: 1, XPReward: 250,
		query: eventCountQuery(`e.hook_type = 'PostToolUse' AND e.tool_name = 'Bash' AND e.tool_input LIKE '%gh pr create%'`)},
}

// WeeklyEngine selects and scores the rotating weekly challenges.
type WeeklyEngine struct {
	db    *store.DB
	stats *StatsEngine
	// now is swappable for tests.
	now func() time.Time
}

// NewWeeklyEngine returns a WeeklyEngine reading from db.
func NewWeeklyEngine(db *store.DB) *WeeklyEngine {
	return &WeeklyEngine{db: db, stats: NewStatsEngine(db), now: time.Now}
}

// WeekStart returns the Monday-anchored start date of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// SelectChallenges deterministically picks this week's challenges from the
// pool: the same week-start string always yields the same selection, with no
// repeats within one week.
func SelectChallenges(weekStart string) []WeeklyChallenge {
	pool := make([]WeeklyChallenge, len(WeeklyPool))
	copy(pool, WeeklyPool)

	picked := make([]WeeklyChallenge, 0, weeklyPick)
	for i := 0; i < weeklyPick && len(pool) > 0; i++ {
		h := fnv.New32a()
		h.Write([]byte(weekStart + ":" + strconv.Itoa(i)))
		idx := int(h.Sum32() % uint32(len(pool)))
		picked = append(picked, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return picked
}

// GetWeeklyGoalsPayload scores the current week: selects challenges, persists
// them, computes each one's progress over the week window, and caches the XP
// breakdown.
func (e *WeeklyEngine) GetWeeklyGoalsPayload() (*WeeklyGoalsPayload, error) {
	start := WeekStart(e.now())
	weekStart := start.Format("2006-01-02")
	nextWeekStart := start.AddDate(0, 0, 7).Format("2006-01-02")

	daysActive, err := e.stats.scalar(`SELECT COUNT(*) FROM daily_activity
		WHERE date >= ? AND date < ?
		  AND (sessions > 0 OR prompts > 0 OR tool_calls > 0)`, weekStart, nextWeekStart)
	if err != nil {
		return nil, err
	}
	if daysActive > 7 {
		daysActive = 7
	}
	multiplier := dayMultipliers[daysActive]

	payload := &WeeklyGoalsPayload{
		WeekStart:  weekStart,
		DaysActive: int(daysActive),
		Multiplier: multiplier,
	}

	baseXP := 0
	for _, challenge := range SelectChallenges(weekStart) {
		if err := e.db.InsertWeeklyGoal(weekStart, challenge.ID, challenge.XPReward); err != nil {
			return nil, err
		}

		current, err := challenge.query(e, weekStart, nextWeekStart)
		if err != nil {
			return nil, err
		}
		completed := current >= challenge.Threshold
		if completed {
			if err := e.db.CompleteWeeklyGoal(weekStart, challenge.ID); err != nil {
				return nil, err
			}
			baseXP += challenge.XPReward
		}

		progress := 1.0
		if !completed {
			progress = float64(current) / float64(challenge.Threshold)
			if progress > 0.99 {
				progress = 0.99
			}
		}

		payload.Challenges = append(payload.Challenges, ChallengeStatus{
			ID:          challenge.ID,
			Description: challenge.Description,
			XPReward:    challenge.XPReward,
			Completed:   completed,
			Progress:    progress,
			Threshold:   challenge.Threshold,
			Current:     current,
		})
	}

	bonusXP := int(math.Round(float64(baseXP) * (multiplier - 1)))
	if err := e.db.UpsertWeeklyXP(weekStart, baseXP, multiplier, bonusXP); err != nil {
		return nil, err
	}

	return payload, nil
}
