// Package store provides SQLite database access for the bashstats event log.
package store

// Session represents one continuous interaction with a coding agent.
type Session struct {
	ID                       string  `json:"id"`
	Agent                    string  `json:"agent"`
	StartedAt                string  `json:"started_at"`
	EndedAt                  *string `json:"ended_at"`
	StopReason               *string `json:"stop_reason"`
	PromptCount              int     `json:"prompt_count"`
	ToolCount                int     `json:"tool_count"`
	ErrorCount               int     `json:"error_count"`
	Project                  *string `json:"project"`
	DurationSeconds          *int64  `json:"duration_seconds"`
	InputTokens              int64   `json:"input_tokens"`
	OutputTokens             int64   `json:"output_tokens"`
	CacheCreationInputTokens int64   `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int64   `json:"cache_read_input_tokens"`
}

// Event represents one hook-triggered occurrence within a session.
// Events are immutable once written and strictly ordered by timestamp.
type Event struct {
	ID         int64   `json:"id"`
	SessionID  string  `json:"session_id"`
	HookType   string  `json:"hook_type"`
	ToolName   *string `json:"tool_name"`
	ToolInput  *string `json:"tool_input"`
	ToolOutput *string `json:"tool_output"`
	ExitCode   *int    `json:"exit_code"`
	Success    *int    `json:"success"`
	CWD        *string `json:"cwd"`
	Project    *string `json:"project"`
	Timestamp  string  `json:"timestamp"`
}

// Prompt represents one user message within a session.
type Prompt struct {
	ID        int64  `json:"id"`
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
	CharCount int    `json:"char_count"`
	WordCount int    `json:"word_count"`
	Timestamp string `json:"timestamp"`
}

// DailyActivity holds additive counters for a single calendar date.
// Counters only ever increase for a given date. The rollup does not
// record which agent contributed.
type DailyActivity struct {
	Date                     string `json:"date"`
	Sessions                 int    `json:"sessions"`
	Prompts                  int    `json:"prompts"`
	ToolCalls                int    `json:"tool_calls"`
	Errors                   int    `json:"errors"`
	DurationSeconds          int64  `json:"duration_seconds"`
	InputTokens              int64  `json:"input_tokens"`
	OutputTokens             int64  `json:"output_tokens"`
	CacheCreationInputTokens int64  `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int64  `json:"cache_read_input_tokens"`
}

// DailyIncrements carries per-date counter deltas for an additive upsert.
type DailyIncrements struct {
	Sessions                 int
	Prompts                  int
	ToolCalls                int
	Errors                   int
	DurationSeconds          int64
	InputTokens              int64
	OutputTokens             int64
	CacheCreationInputTokens int64
	CacheReadInputTokens     int64
}

// TokenUsage holds the four token counters attached to a session at stop.
type TokenUsage struct {
	InputTokens              int64 `json:"input_tokens"`
	OutputTokens             int64 `json:"output_tokens"`
	CacheCreationInputTokens int64 `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int64 `json:"cache_read_input_tokens"`
}

// AchievementUnlock records one (badge, tier) pair that has been reached.
type AchievementUnlock struct {
	BadgeID    string `json:"badge_id"`
	Tier       int    `json:"tier"`
	UnlockedAt string `json:"unlocked_at"`
	Notified   bool   `json:"notified"`
}

// EventFilter narrows an event scan. Zero-value fields are ignored.
type EventFilter struct {
	SessionID string
	HookType  string
	ToolName  string
}

// SessionUpdate carries finalization fields for UpdateSession.
// Nil fields are left untouched.
type SessionUpdate struct {
	EndedAt         *string
	StopReason      *string
	DurationSeconds *int64
}

// CounterIncrements carries per-session running counter deltas.
type CounterIncrements struct {
	Prompts int
	Tools   int
	Errors  int
}

// WeeklyGoal records one challenge selected for a week.
type WeeklyGoal struct {
	WeekStart   string `json:"week_start"`
	ChallengeID string `json:"challenge_id"`
	Completed   bool   `json:"completed"`
	XPReward    int    `json:"xp_reward"`
}

// WeeklyXP caches the XP breakdown computed for one week.
type WeeklyXP struct {
	WeekStart  string  `json:"week_start"`
	BaseXP     int     `json:"base_xp"`
	Multiplier float64 `json:"multiplier"`
	BonusXP    int     `json:"bonus_xp"`
}
