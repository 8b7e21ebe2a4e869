package mcp

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blackwell-systems/bashstats/internal/engine"
)

var noArgsSchema = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)

var agentSchema = json.RawMessage(`{"type":"object","properties":{"agent":{"type":"string","description":"Filter to one agent (claude-code, gemini-cli, copilot-cli, opencode)"}},"additionalProperties":false}`)

// addTools registers the three MCP tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "bashstats_overview",
		Description: "Coding stats summary: rank, XP, streak, lifetime totals, today's activity, and token usage.",
		InputSchema: agentSchema,
		Handler:     s.handleOverview,
	})
	s.registerTool(toolDef{
		Name:        "bashstats_achievements",
		Description: "Badge and achievement progress: unlocked count, closest to unlocking, recent unlocks.",
		InputSchema: agentSchema,
		Handler:     s.handleAchievements,
	})
	s.registerTool(toolDef{
		Name:        "bashstats_goals",
		Description: "Weekly goals and challenge progress: days active, multiplier, each challenge status.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGoals,
	})
}

// fmtCount abbreviates large counts (1.2K, 3.4M, 1.1B).
func fmtCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	}
	return fmt.Sprintf("%d", n)
}

func hoursFromSeconds(s int64) string {
	return fmt.Sprintf("%.1f", float64(s)/3600)
}

// agentArg extracts the optional agent filter from tool arguments.
func agentArg(args json.RawMessage) string {
	var params struct {
		Agent string `json:"agent"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return ""
	}
	return params.Agent
}

// handleOverview returns the rank, streak, and lifetime summary as text.
func (s *Server) handleOverview(args json.RawMessage) (any, error) {
	agent := agentArg(args)

	xp, err := s.achievements.ComputeXP(agent)
	if err != nil {
		return nil, err
	}
	all, err := s.stats.GetAllStats(agent)
	if err != nil {
		return nil, err
	}
	lifetime, tm := all.Lifetime, all.Time

	progressPct := xp.Progress * 100
	lines := []string{
		fmt.Sprintf("Rank %d (%s) - %s / %s XP (%.1f%% to Rank %d)",
			xp.RankNumber, xp.RankTier, fmtCount(xp.TotalXP), fmtCount(xp.NextRankXP), progressPct, xp.RankNumber+1),
		fmt.Sprintf("Streak: %d days (longest: %d days)", tm.CurrentStreak, tm.LongestStreak),
		"",
		fmt.Sprintf("Lifetime: %s sessions, %s prompts, %s tool calls, %s hours",
			fmtCount(lifetime.TotalSessions), fmtCount(lifetime.TotalPrompts),
			fmtCount(lifetime.TotalToolCalls), hoursFromSeconds(lifetime.TotalDurationSeconds)),
		fmt.Sprintf("Tokens: %s total (input: %s, output: %s, cache read: %s)",
			fmtCount(lifetime.TotalTokens), fmtCount(lifetime.TotalInputTokens),
			fmtCount(lifetime.TotalOutputTokens), fmtCount(lifetime.TotalCacheReadTokens)),
		fmt.Sprintf("Code: %s commits, +%s / -%s lines",
			fmtCount(lifetime.TotalCommits), fmtCount(lifetime.TotalLinesAdded), fmtCount(lifetime.TotalLinesRemoved)),
	}

	today, err := s.db.GetDailyActivity(time.Now().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if today != nil {
		todayTokens := today.InputTokens + today.OutputTokens + today.CacheCreationInputTokens + today.CacheReadInputTokens
		lines = append(lines, "",
			fmt.Sprintf("Today: %d sessions, %d prompts, %s tools, %s hours, %s tokens",
				today.Sessions, today.Prompts, fmtCount(int64(today.ToolCalls)),
				hoursFromSeconds(today.DurationSeconds), fmtCount(todayTokens)))
	}

	return strings.Join(lines, "\n"), nil
}

// handleAchievements returns badge progress and recent unlocks as text.
func (s *Server) handleAchievements(args json.RawMessage) (any, error) {
	badges, err := s.achievements.ComputeBadges(agentArg(args))
	if err != nil {
		return nil, err
	}

	unlockedCount := 0
	for _, b := range badges {
		if b.Unlocked {
			unlockedCount++
		}
	}
	pct := 0
	if len(badges) > 0 {
		pct = int(float64(unlockedCount)/float64(len(badges))*100 + 0.5)
	}

	closest := make([]engine.BadgeResult, 0, len(badges))
	for _, b := range badges {
		if !b.Maxed && b.Progress > 0 {
			closest = append(closest, b)
		}
	}
	sort.Slice(closest, func(i, j int) bool { return closest[i].Progress > closest[j].Progress })
	if len(closest) > 5 {
		closest = closest[:5]
	}

	lines := []string{fmt.Sprintf("Badges: %d / %d unlocked (%d%%)", unlockedCount, len(badges), pct)}

	if len(closest) > 0 {
		lines = append(lines, "", "Closest to unlock:")
		for _, b := range closest {
			lines = append(lines, fmt.Sprintf("  %s (%d%%) - %s/%s %s",
				b.Name, int(b.Progress*100), fmtCount(b.Value), fmtCount(b.NextThreshold), b.Trigger))
		}
	}

	unlocks, err := s.db.GetUnlocks()
	if err != nil {
		return nil, err
	}
	if len(unlocks) > 0 {
		sort.Slice(unlocks, func(i, j int) bool { return unlocks[i].UnlockedAt > unlocks[j].UnlockedAt })
		if len(unlocks) > 5 {
			unlocks = unlocks[:5]
		}
		names := make([]string, 0, len(unlocks))
		for _, u := range unlocks {
			if def := engine.BadgeByID(u.BadgeID); def != nil {
				names = append(names, def.Name)
			} else {
				names = append(names, u.BadgeID)
			}
		}
		lines = append(lines, "", "Recent unlocks:", "  "+strings.Join(names, ", "))
	}

	return strings.Join(lines, "\n"), nil
}

// handleGoals returns the weekly challenge status as text.
func (s *Server) handleGoals(args json.RawMessage) (any, error) {
	payload, err := s.weekly.GetWeeklyGoalsPayload()
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("Weekly Goals (%gx multiplier, %d/7 days active)", payload.Multiplier, payload.DaysActive),
		"",
	}
	for _, c := range payload.Challenges {
		status := "    "
		if c.Completed {
			status = "DONE"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s - %s/%s (+%d XP)",
			status, c.Description, fmtCount(c.Current), fmtCount(c.Threshold), c.XPReward))
	}

	return strings.Join(lines, "\n"), nil
}
