// Package engine computes aggregate statistics, badges, XP, ranks, and
// weekly challenges from the bashstats event log.
package engine

// Agent identity values recorded on sessions. The hook layer detects which
// CLI fired the hook; "claude-code" is the default.
const (
	AgentClaudeCode = "claude-code"
	AgentGeminiCLI  = "gemini-cli"
	AgentCopilotCLI = "copilot-cli"
	AgentOpenCode   = "opencode"
)

// KnownAgents lists the fixed set of named agent CLIs.
var KnownAgents = []string{AgentClaudeCode, AgentGeminiCLI, AgentCopilotCLI, AgentOpenCode}

// AgentDisplayNames maps agent identities to human-readable names.
var AgentDisplayNames = map[string]string{
	AgentClaudeCode: "Claude Code",
	AgentGeminiCLI:  "Gemini CLI",
	AgentCopilotCLI: "Copilot CLI",
	AgentOpenCode:   "OpenCode",
}

// LifetimeStats holds aggregate counts and sums across the whole event log.
type LifetimeStats struct {
	TotalSessions            int64 `json:"totalSessions"`
	TotalDurationSeconds     int64 `json:"totalDurationSeconds"`
	TotalPrompts             int64 `json:"totalPrompts"`
	TotalCharsTyped          int64 `json:"totalCharsTyped"`
	TotalToolCalls           int64 `json:"totalToolCalls"`
	TotalFilesRead           int64 `json:"totalFilesRead"`
	TotalFilesWritten        int64 `json:"totalFilesWritten"`
	TotalFilesEdited         int64 `json:"totalFilesEdited"`
	TotalFilesCreated        int64 `json:"totalFilesCreated"`
	TotalBashCommands        int64 `json:"totalBashCommands"`
	TotalWebSearches         int64 `json:"totalWebSearches"`
	TotalWebFetches          int64 `json:"totalWebFetches"`
	TotalSubagents           int64 `json:"totalSubagents"`
	TotalCompactions         int64 `json:"totalCompactions"`
	TotalErrors              int64 `json:"totalErrors"`
	TotalRateLimits          int64 `json:"totalRateLimits"`
	TotalInputTokens         int64 `json:"totalInputTokens"`
	TotalOutputTokens        int64 `json:"totalOutputTokens"`
	TotalCacheCreationTokens int64 `json:"totalCacheCreationTokens"`
	TotalCacheReadTokens     int64 `json:"totalCacheReadTokens"`
	TotalTokens              int64 `json:"totalTokens"`
	TotalCommits             int64 `json:"totalCommits"`
	TotalLinesAdded          int64 `json:"totalLinesAdded"`
	TotalLinesRemoved        int64 `json:"totalLinesRemoved"`
}

// ToolBreakdown maps tool name to successful invocation count.
type ToolBreakdown map[string]int64

// TimeStats holds streaks and time-of-day statistics.
//
// Streaks and the busiest date come from the daily rollup, which does not
// record agent identity, so those fields ignore any agent filter.
type TimeStats struct {
	CurrentStreak    int    `json:"currentStreak"`
	LongestStreak    int    `json:"longestStreak"`
	PeakHour         int    `json:"peakHour"`
	PeakHourCount    int64  `json:"peakHourCount"`
	NightOwlCount    int64  `json:"nightOwlCount"`
	EarlyBirdCount   int64  `json:"earlyBirdCount"`
	WeekendSessions  int64  `json:"weekendSessions"`
	MostActiveDay    int    `json:"mostActiveDay"`
	BusiestDate      string `json:"busiestDate"`
	BusiestDateCount int64  `json:"busiestDateCount"`
}

// SessionRecords holds per-session extremes and averages.
type SessionRecords struct {
	LongestSessionSeconds int64   `json:"longestSessionSeconds"`
	MostToolsInSession    int64   `json:"mostToolsInSession"`
	MostPromptsInSession  int64   `json:"mostPromptsInSession"`
	FastestSessionSeconds int64   `json:"fastestSessionSeconds"`
	AvgDurationSeconds    int64   `json:"avgDurationSeconds"`
	AvgPromptsPerSession  float64 `json:"avgPromptsPerSession"`
	AvgToolsPerSession    float64 `json:"avgToolsPerSession"`
	MostTokensInSession   int64   `json:"mostTokensInSession"`
	AvgTokensPerSession   int64   `json:"avgTokensPerSession"`
}

// ProjectStats holds the per-project session breakdown.
type ProjectStats struct {
	UniqueProjects          int64            `json:"uniqueProjects"`
	MostVisitedProject      string           `json:"mostVisitedProject"`
	MostVisitedProjectCount int64            `json:"mostVisitedProjectCount"`
	ProjectBreakdown        map[string]int64 `json:"projectBreakdown"`
}

// AllStats bundles the five aggregate views.
type AllStats struct {
	Lifetime LifetimeStats  `json:"lifetime"`
	Tools    ToolBreakdown  `json:"tools"`
	Time     TimeStats      `json:"time"`
	Sessions SessionRecords `json:"sessions"`
	Projects ProjectStats   `json:"projects"`
}

// AgentBreakdown summarizes activity across the fixed agent set.
type AgentBreakdown struct {
	FavoriteAgent    string             `json:"favoriteAgent"`
	SessionsPerAgent map[string]int64   `json:"sessionsPerAgent"`
	HoursPerAgent    map[string]float64 `json:"hoursPerAgent"`
	DistinctAgents   int64              `json:"distinctAgents"`
}

// BadgeResult is the evaluated state of one catalog badge.
type BadgeResult struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Stat          string   `json:"stat"`
	Tiers         [5]int64 `json:"tiers"`
	Tier          int      `json:"tier"`
	TierName      string   `json:"tierName"`
	Value         int64    `json:"value"`
	NextThreshold int64    `json:"nextThreshold"`
	Progress      float64  `json:"progress"`
	Maxed         bool     `json:"maxed"`
	Trigger       string   `json:"trigger"`
	Secret        bool     `json:"secret"`
	Unlocked      bool     `json:"unlocked"`
}

// XPResult is the computed XP total and rank placement.
type XPResult struct {
	TotalXP    int64   `json:"totalXP"`
	RankNumber int     `json:"rankNumber"`
	RankTier   string  `json:"rankTier"`
	NextRankXP int64   `json:"nextRankXP"`
	Progress   float64 `json:"progress"`
}

// AchievementsPayload bundles stats, badges, and XP for callers.
type AchievementsPayload struct {
	Stats  AllStats      `json:"stats"`
	Badges []BadgeResult `json:"badges"`
	XP     XPResult      `json:"xp"`
}

// tierNames maps a tier number 0..5 to its display name.
var tierNames = [6]string{"Locked", "Bronze", "Silver", "Gold", "Diamond", "Singularity"}

// TierName returns the display name for a badge tier 0..5.
func TierName(tier int) string {
	if tier < 0 || tier >= len(tierNames) {
		return tierNames[0]
	}
	return tierNames[tier]
}

// ChallengeStatus is the scored state of one selected weekly challenge.
type ChallengeStatus struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	XPReward    int     `json:"xpReward"`
	Completed   bool    `json:"completed"`
	Progress    float64 `json:"progress"`
	Threshold   int64   `json:"threshold"`
	Current     int64   `json:"current"`
}

// WeeklyGoalsPayload is the weekly challenge view for callers.
type WeeklyGoalsPayload struct {
	WeekStart  string            `json:"weekStart"`
	DaysActive int               `json:"daysActive"`
	Multiplier float64           `json:"multiplier"`
	Challenges []ChallengeStatus `json:"challenges"`
}
