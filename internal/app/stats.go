package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bashstats/internal/engine"
	"github.com/blackwell-systems/bashstats/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Lifetime totals, tool breakdown, streaks, and records",
	Long: `Display aggregate stats from the event log: lifetime totals, per-tool
call counts, time-of-day patterns and streaks, session records, and the
project breakdown. Use --agent to scope everything to one agent.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagAgent, "agent", "", "Filter to one agent (claude-code, gemini-cli, copilot-cli, opencode)")
	statsCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func formatDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	stats := engine.NewStatsEngine(db)
	all, err := stats.GetAllStats(flagAgent)
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	renderLifetime(all.Lifetime)
	renderTools(all.Tools)
	renderTime(all.Time)
	renderRecords(all.Sessions)
	renderProjects(all.Projects)

	if flagAgent == "" {
		agents, err := stats.GetAgentBreakdown()
		if err != nil {
			return fmt.Errorf("computing agent breakdown: %w", err)
		}
		renderAgents(agents)
	}

	fmt.Println()
	return nil
}

func statLine(label, value string) {
	fmt.Printf(" %s %s\n", output.StyleLabel.Render(label), output.StyleBold.Render(value))
}

func renderLifetime(l engine.LifetimeStats) {
	fmt.Println(output.Section("Lifetime Totals"))
	statLine("Sessions", output.Comma(l.TotalSessions))
	statLine("Time", formatDuration(l.TotalDurationSeconds))
	statLine("Prompts", output.Comma(l.TotalPrompts))
	statLine("Chars typed", output.Comma(l.TotalCharsTyped))
	statLine("Tool calls", output.Comma(l.TotalToolCalls))
	statLine("Commits", output.Comma(l.TotalCommits))
	statLine("Lines added", "+"+output.Comma(l.TotalLinesAdded))
	statLine("Lines removed", "-"+output.Comma(l.TotalLinesRemoved))
	statLine("Errors", output.Comma(l.TotalErrors))
	statLine("Tokens", output.Comma(l.TotalTokens))
}

func renderTools(tools engine.ToolBreakdown) {
	if len(tools) == 0 {
		return
	}
	fmt.Println(output.Section("Tool Breakdown"))

	type entry struct {
		name  string
		count int64
	}
	sorted := make([]entry, 0, len(tools))
	for name, count := range tools {
		sorted = append(sorted, entry{name, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}

	table := output.NewTable("Tool", "Calls").AlignRight(1)
	for _, e := range sorted {
		table.AddRow(e.name, output.Comma(e.count))
	}
	fmt.Print(indent(table.Render(), " "))
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func renderTime(t engine.TimeStats) {
	fmt.Println(output.Section("Time & Streaks"))
	statLine("Current streak", fmt.Sprintf("%d days", t.CurrentStreak))
	statLine("Longest streak", fmt.Sprintf("%d days", t.LongestStreak))
	statLine("Peak hour", fmt.Sprintf("%d:00 (%s prompts)", t.PeakHour, output.Comma(t.PeakHourCount)))
	statLine("Night owl", fmt.Sprintf("%s late-night prompts", output.Comma(t.NightOwlCount)))
	statLine("Weekend", fmt.Sprintf("%s weekend sessions", output.Comma(t.WeekendSessions)))
	if t.BusiestDate != "" {
		statLine("Busiest day", fmt.Sprintf("%s (%s prompts)", t.BusiestDate, output.Comma(t.BusiestDateCount)))
	}
}

func renderRecords(r engine.SessionRecords) {
	fmt.Println(output.Section("Session Records"))
	statLine("Longest", formatDuration(r.LongestSessionSeconds))
	statLine("Most tools", fmt.Sprintf("%s in one session", output.Comma(r.MostToolsInSession)))
	statLine("Most prompts", fmt.Sprintf("%s in one session", output.Comma(r.MostPromptsInSession)))
	statLine("Avg duration", formatDuration(r.AvgDurationSeconds))
	statLine("Avg prompts", fmt.Sprintf("%.1f per session", r.AvgPromptsPerSession))
}

func renderProjects(p engine.ProjectStats) {
	if p.UniqueProjects == 0 {
		return
	}
	fmt.Println(output.Section("Projects"))
	statLine("Unique", output.Comma(p.UniqueProjects))
	statLine("Most visited", fmt.Sprintf("%s (%s sessions)", p.MostVisitedProject, output.Comma(p.MostVisitedProjectCount)))
}

func renderAgents(a *engine.AgentBreakdown) {
	if a.DistinctAgents < 2 {
		return
	}
	fmt.Println(output.Section("Agents"))
	for _, agent := range engine.KnownAgents {
		count, ok := a.SessionsPerAgent[agent]
		if !ok || count == 0 {
			continue
		}
		label := engine.AgentDisplayNames[agent]
		statLine(label, fmt.Sprintf("%s sessions, %.1f hours", output.Comma(count), a.HoursPerAgent[agent]))
	}
	statLine("Favorite", engine.AgentDisplayNames[a.FavoriteAgent])
}
