package engine

// flattenStats assembles the single name-to-value map badge evaluation runs
// against. Assembly is explicit so the set of legal statistic names stays
// checkable: aggregate-view copies first, then the pattern statistics, then
// the zero-filled placeholders.
func (a *AchievementEngine) flattenStats(agent string) (map[string]int64, *AllStats, error) {
	stats, err := a.stats.GetAllStats(agent)
	if err != nil {
		return nil, nil, err
	}
	patterns, err := a.computePatternStats(agent)
	if err != nil {
		return nil, nil, err
	}

	flat := map[string]int64{
		"totalSessions":            stats.Lifetime.TotalSessions,
		"totalSessionHours":        stats.Lifetime.TotalDurationSeconds / 3600,
		"totalPrompts":             stats.Lifetime.TotalPrompts,
		"totalCharsTyped":          stats.Lifetime.TotalCharsTyped,
		"totalToolCalls":           stats.Lifetime.TotalToolCalls,
		"totalFilesRead":           stats.Lifetime.TotalFilesRead,
		"totalFilesWritten":        stats.Lifetime.TotalFilesWritten,
		"totalFilesEdited":         stats.Lifetime.TotalFilesEdited,
		"totalFilesCreated":        stats.Lifetime.TotalFilesCreated,
		"totalBashCommands":        stats.Lifetime.TotalBashCommands,
		"totalWebSearches":         stats.Lifetime.TotalWebSearches,
		"totalWebFetches":          stats.Lifetime.TotalWebFetches,
		"totalSubagents":           stats.Lifetime.TotalSubagents,
		"totalCompactions":         stats.Lifetime.TotalCompactions,
		"totalErrors":              stats.Lifetime.TotalErrors,
		"totalRateLimits":          stats.Lifetime.TotalRateLimits,
		"totalInputTokens":         stats.Lifetime.TotalInputTokens,
		"totalOutputTokens":        stats.Lifetime.TotalOutputTokens,
		"totalCacheCreationTokens": stats.Lifetime.TotalCacheCreationTokens,
		"totalCacheReadTokens":     stats.Lifetime.TotalCacheReadTokens,
		"totalTokens":              stats.Lifetime.TotalTokens,
		"totalCommits":             stats.Lifetime.TotalCommits,
		"totalLinesAdded":          stats.Lifetime.TotalLinesAdded,
		"totalLinesRemoved":        stats.Lifetime.TotalLinesRemoved,

		"currentStreak":    int64(stats.Time.CurrentStreak),
		"longestStreak":    int64(stats.Time.LongestStreak),
		"nightOwlCount":    stats.Time.NightOwlCount,
		"earlyBirdCount":   stats.Time.EarlyBirdCount,
		"weekendSessions":  stats.Time.WeekendSessions,
		"busiestDateCount": stats.Time.BusiestDateCount,

		"longestSessionHours":  stats.Sessions.LongestSessionSeconds / 3600,
		"mostToolsInSession":   stats.Sessions.MostToolsInSession,
		"mostPromptsInSession": stats.Sessions.MostPromptsInSession,
		"mostTokensInSession":  stats.Sessions.MostTokensInSession,

		"uniqueProjects":          stats.Projects.UniqueProjects,
		"mostVisitedProjectCount": stats.Projects.MostVisitedProjectCount,
	}

	for name, value := range patterns {
		flat[name] = value
	}

	// These depend on badge and XP output not yet computed, so they stay at
	// zero during evaluation. Badges watching them cannot unlock within a
	// single pass, a limitation carried over deliberately.
	flat["totalXP"] = 0
	flat["allToolsObsidian"] = 0
	flat["allBadgesGold"] = 0
	flat["allNonSecretBadgesUnlocked"] = 0

	return flat, stats, nil
}
