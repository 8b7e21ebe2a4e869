package engine

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Pattern statistics are the derived values the badge catalog watches beyond
// the plain aggregate views. Each group is computed by one linear scan over a
// single ordered fetch, with running state, never per-row queries.

var editTools = map[string]bool{"Edit": true, "MultiEdit": true, "NotebookEdit": true}
var searchTools = map[string]bool{"Grep": true, "Glob": true, "WebSearch": true}

// fullSendTools is the set a single session must cover for allToolsInSession.
var fullSendTools = []string{"Bash", "Read", "Write", "Edit", "Grep", "Glob", "WebFetch"}

// holidayDates are fixed MM-DD dates that count as holiday activity.
var holidayDates = map[string]bool{
	"01-01": true, "07-04": true, "10-31": true,
	"12-24": true, "12-25": true, "12-31": true,
}

var numberedLineRe = regexp.MustCompile(`^\s*\d+\.\s`)

// negotiationPhrases are case-insensitive substrings that read as bargaining
// with the agent.
var negotiationPhrases = []string{"how about", "what if", "instead,", "let's try", "can we just"}

// filePathOf pulls the file_path field out of a serialized tool input.
// Malformed payloads contribute nothing.
func filePathOf(input string) string {
	var p struct {
		FilePath string `json:"file_path"`
	}
	if err := json.Unmarshal([]byte(input), &p); err != nil {
		return ""
	}
	return p.FilePath
}

// fileExt returns the lowercased extension of a path without the dot.
func fileExt(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 || i == len(path)-1 {
		return ""
	}
	ext := strings.ToLower(path[i+1:])
	if strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}

// dangerousCommand reports whether a raw tool input carries a recursive
// delete.
func dangerousCommand(input string) bool {
	return strings.Contains(input, "rm -rf") || strings.Contains(input, "rm -r /")
}

// normalizePrompt lowercases and collapses whitespace for duplicate
// detection.
func normalizePrompt(content string) string {
	return strings.Join(strings.Fields(strings.ToLower(content)), " ")
}

// hourOf extracts the local hour from a stored millisecond timestamp.
func hourOf(ts string) int {
	if len(ts) < 13 {
		return -1
	}
	h := int(ts[11]-'0')*10 + int(ts[12]-'0')
	if h < 0 || h > 23 {
		return -1
	}
	return h
}

// parseStoredTime parses the millisecond local timestamp format used
// throughout the database.
func parseStoredTime(ts string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02T15:04:05.000", ts, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// synodicMonth is the mean lunar cycle length in days.
const synodicMonth = 29.530588

// referenceFullMoon is 2000-01-21 04:40 UTC, a known full moon.
var referenceFullMoon = time.Date(2000, 1, 21, 4, 40, 0, 0, time.UTC)

// isNearFullMoon approximates the lunar phase by folding the time since a
// reference full moon into the synodic cycle. Within a day of full counts.
func isNearFullMoon(t time.Time) bool {
	days := t.Sub(referenceFullMoon).Hours() / 24
	phase := math.Mod(days, synodicMonth)
	if phase < 0 {
		phase += synodicMonth
	}
	return phase < 1.0 || phase > synodicMonth-1.0
}

// sessState carries per-session running state for the tool sequence scan.
type sessState struct {
	lastTool      string
	prevTool      string
	lastWritePath string
	lastEditPath  string
	failTool      string
	failRun       int
	tools         map[string]bool
	writePaths    map[string]bool
	fileEdits     map[string]int64
	errors        int64
	subagentDepth int
	maxSubDepth   int
}

// toolSequenceStats runs the single ordered scan over tool-related events and
// fills every adjacency, run-length, and grouped-max statistic.
func (a *AchievementEngine) toolSequenceStats(agent string, out map[string]int64) error {
	cond, args := agentCond(agent)
	q := `SELECT e.session_id, e.hook_type, e.tool_name, e.success, e.tool_input
		FROM events e JOIN sessions s ON e.session_id = s.id
		WHERE e.hook_type IN ('PreToolUse', 'PostToolUse', 'PostToolUseFailure', 'SubagentStart', 'SubagentStop', 'PermissionRequest')` + cond + `
		ORDER BY e.timestamp ASC, e.id ASC`
	rows, err := a.db.Conn().Query(q, args...)
	if err != nil {
		return fmt.Errorf("tool sequence scan: %w", err)
	}
	defer rows.Close()

	sessions := map[string]*sessState{}
	state := func(id string) *sessState {
		st := sessions[id]
		if st == nil {
			st = &sessState{tools: map[string]bool{}, writePaths: map[string]bool{}, fileEdits: map[string]int64{}}
			sessions[id] = st
		}
		return st
	}

	globalTools := map[string]bool{}
	languages := map[string]bool{}
	globalFileEdits := map[string]int64{}

	var successRun, longestCleanRun int64

	for rows.Next() {
		var sessionID, hookType string
		var toolName, toolInput sql.NullString
		var success sql.NullInt64
		if err := rows.Scan(&sessionID, &hookType, &toolName, &success, &toolInput); err != nil {
			return err
		}
		st := state(sessionID)

		switch hookType {
		case "SubagentStart":
			st.subagentDepth++
			if st.subagentDepth > st.maxSubDepth {
				st.maxSubDepth = st.subagentDepth
			}
			continue
		case "SubagentStop":
			if st.subagentDepth > 0 {
				st.subagentDepth--
			}
			continue
		case "PermissionRequest":
			if toolInput.Valid && dangerousCommand(toolInput.String) {
				out["dangerousCommandBlocked"] = 1
			}
			continue
		case "PreToolUse":
			if toolName.String == "Bash" && toolInput.Valid && dangerousCommand(toolInput.String) {
				out["dangerousCommandBlocked"] = 1
			}
			continue
		}

		tool := toolName.String
		if tool == "" {
			continue
		}
		ok := hookType == "PostToolUse" && (!success.Valid || success.Int64 == 1)
		input := toolInput.String
		path := ""
		if tool == "Read" || tool == "Write" || editTools[tool] {
			path = filePathOf(input)
		}

		// Run-length stats over the global outcome stream.
		if ok {
			successRun++
			if successRun > longestCleanRun {
				longestCleanRun = successRun
			}
		} else {
			successRun = 0
			st.errors++
			if st.errors > out["maxErrorsInSession"] {
				out["maxErrorsInSession"] = st.errors
			}
		}

		// Recovery patterns are per tool within a session.
		if ok && st.failTool == tool && st.failRun >= 1 && !editTools[tool] {
			out["errorRecoveryCount"]++
		}
		if ok && st.failTool == tool && st.failRun >= 2 {
			out["comboBreakerCount"]++
		}
		if ok {
			st.failTool = ""
			st.failRun = 0
		} else {
			if st.failTool == tool {
				st.failRun++
			} else {
				st.failTool = tool
				st.failRun = 1
			}
		}

		if !ok {
			st.prevTool, st.lastTool = st.lastTool, tool
			continue
		}

		// Successful invocation bookkeeping.
		st.tools[tool] = true
		globalTools[tool] = true

		switch {
		case tool == "Bash":
			if strings.Contains(input, "gh pr create") {
				out["totalPRs"]++
			}
			if st.prevTool == "Read" && editTools[st.lastTool] {
				out["readEditBashCombos"]++
			}
		case searchTools[tool]:
			out["totalSearches"]++
		case tool == "ExitPlanMode" || tool == "exit_plan_mode":
			out["planModeUses"]++
		case tool == "Write":
			if searchTools[st.lastTool] {
				out["searchThenEditCount"]++
			}
			if path != "" {
				st.writePaths[path] = true
				if int64(len(st.writePaths)) > out["maxFilesCreatedInSession"] {
					out["maxFilesCreatedInSession"] = int64(len(st.writePaths))
				}
				if ext := fileExt(path); ext != "" {
					languages[ext] = true
				}
			}
			st.lastWritePath = path
		case tool == "Read":
			if path != "" && path == st.lastWritePath && st.lastTool == "Write" {
				out["writeThenReadCount"]++
			}
		case editTools[tool]:
			if searchTools[st.lastTool] {
				out["searchThenEditCount"]++
			}
			if path != "" {
				if editTools[st.lastTool] && path == st.lastEditPath {
					out["backToBackSameFileEdits"]++
				}
				st.fileEdits[path]++
				globalFileEdits[path]++
				if st.fileEdits[path] > out["maxSameFileEditsInSession"] {
					out["maxSameFileEditsInSession"] = st.fileEdits[path]
				}
				if globalFileEdits[path] > out["maxSameFileEdits"] {
					out["maxSameFileEdits"] = globalFileEdits[path]
				}
				if ext := fileExt(path); ext != "" {
					languages[ext] = true
				}
			}
			st.lastEditPath = path
		}

		if int64(len(st.tools)) > out["maxDistinctToolsInSession"] {
			out["maxDistinctToolsInSession"] = int64(len(st.tools))
		}
		st.prevTool, st.lastTool = st.lastTool, tool
	}
	if err := rows.Err(); err != nil {
		return err
	}

	out["longestErrorFreeStreak"] = longestCleanRun
	out["uniqueToolsUsed"] = int64(len(globalTools))
	out["uniqueLanguages"] = int64(len(languages))

	for _, st := range sessions {
		if st.maxSubDepth > int(out["maxConcurrentSubagents"]) {
			out["maxConcurrentSubagents"] = int64(st.maxSubDepth)
		}
		if st.maxSubDepth >= 2 {
			out["concurrentAgentUses"]++
			out["nestedSubagent"] = 1
		}
		covered := true
		for _, t := range fullSendTools {
			if !st.tools[t] {
				covered = false
				break
			}
		}
		if covered {
			out["allToolsInSession"] = 1
		}
	}

	return nil
}

// promptPatternStats runs the single ordered scan over prompts and fills the
// textual and time-of-day prompt statistics.
func (a *AchievementEngine) promptPatternStats(agent string, out map[string]int64) error {
	cond, args := agentCond(agent)
	q := `SELECT p.session_id, p.content, p.char_count, p.word_count, p.timestamp
		FROM prompts p JOIN sessions s ON p.session_id = s.id
		WHERE 1=1` + cond + `
		ORDER BY p.timestamp ASC, p.id ASC`
	rows, err := a.db.Conn().Query(q, args...)
	if err != nil {
		return fmt.Errorf("prompt scan: %w", err)
	}
	defer rows.Close()

	globalCounts := map[string]int64{}
	perSession := map[string]map[string]bool{}
	lastSeenAt := map[string]time.Time{}

	for rows.Next() {
		var sessionID, content, ts string
		var charCount, wordCount int64
		if err := rows.Scan(&sessionID, &content, &charCount, &wordCount, &ts); err != nil {
			return err
		}

		lower := strings.ToLower(content)
		trimmed := strings.TrimSpace(content)
		lines := strings.Split(content, "\n")

		if strings.Contains(lower, "please") || strings.Contains(lower, "thank") {
			out["politePromptCount"]++
		}
		if strings.Contains(lower, "sorry") || strings.Contains(lower, "apolog") || strings.Contains(lower, "my bad") {
			out["apologyPromptCount"]++
		}
		for _, phrase := range negotiationPhrases {
			if strings.Contains(lower, phrase) {
				out["negotiationPromptCount"]++
				break
			}
		}
		if len(trimmed) >= 8 && trimmed == strings.ToUpper(trimmed) && trimmed != strings.ToLower(trimmed) {
			out["allCapsPromptCount"]++
		}
		if containsEmoji(content) {
			out["emojiPromptCount"]++
		}
		numbered := 0
		for _, line := range lines {
			if numberedLineRe.MatchString(line) {
				numbered++
			}
		}
		if numbered >= 3 {
			out["numberedListPromptCount"]++
		}
		if strings.HasSuffix(trimmed, "?") {
			out["questionPromptCount"]++
		}
		if charCount >= 1000 {
			out["longPromptCount"]++
		}
		if charCount >= 5000 {
			out["hugePromptCount"]++
		}
		if charCount > 0 && charCount < 20 {
			out["tinyPromptCount"]++
		}
		if len(lines) >= 5 {
			out["multiLinePromptCount"]++
		}
		if wordCount == 1 {
			out["oneWordPromptCount"]++
		}

		switch h := hourOf(ts); {
		case h >= 2 && h < 4:
			out["witchingHourPrompts"]++
			if h == 3 {
				out["threeAmPrompt"] = 1
			}
		case h == 0:
			out["midnightPrompt"] = 1
		}

		norm := normalizePrompt(content)
		if norm == "" {
			continue
		}
		globalCounts[norm]++
		if globalCounts[norm] > out["mostRepeatedPromptCount"] {
			out["mostRepeatedPromptCount"] = globalCounts[norm]
		}
		seen := perSession[sessionID]
		if seen == nil {
			seen = map[string]bool{}
			perSession[sessionID] = seen
		}
		if seen[norm] {
			out["repeatedPromptCount"]++
		}
		seen[norm] = true
		if t, ok := parseStoredTime(ts); ok {
			if prev, dup := lastSeenAt[norm]; dup && t.Sub(prev) <= 10*time.Minute {
				out["duplicatePromptBurstCount"]++
			}
			lastSeenAt[norm] = t
		}
	}
	return rows.Err()
}

// containsEmoji reports whether any rune falls in the common emoji blocks.
func containsEmoji(s string) bool {
	for _, r := range s {
		if (r >= 0x1F300 && r <= 0x1FAFF) || (r >= 0x2600 && r <= 0x27BF) {
			return true
		}
	}
	return false
}

// sessionPatternStats scans sessions in start order and fills calendar,
// duration, and project lifecycle statistics.
func (a *AchievementEngine) sessionPatternStats(agent string, out map[string]int64) error {
	cond, args := agentCond(agent)
	q := `SELECT s.id, s.agent, s.started_at, s.ended_at, s.duration_seconds, s.tool_count, s.project
		FROM sessions s WHERE 1=1` + cond + `
		ORDER BY s.started_at ASC, s.id ASC`
	rows, err := a.db.Conn().Query(q, args...)
	if err != nil {
		return fmt.Errorf("session scan: %w", err)
	}
	defer rows.Close()

	var firstStart time.Time
	haveFirst := false
	lastProjectDate := map[string]time.Time{}
	agentsByDate := map[string]map[string]bool{}
	agentSessions := map[string]int64{}

	for rows.Next() {
		var id, agentName, startedAt string
		var endedAt, project sql.NullString
		var duration sql.NullInt64
		var toolCount int64
		if err := rows.Scan(&id, &agentName, &startedAt, &endedAt, &duration, &toolCount, &project); err != nil {
			return err
		}
		out["firstEverSession"] = 1
		agentSessions[agentName]++

		start, okTime := parseStoredTime(startedAt)
		if okTime {
			if !haveFirst {
				firstStart = start
				haveFirst = true
			} else if start.Month() == firstStart.Month() && start.Day() == firstStart.Day() && start.Year() != firstStart.Year() {
				out["anniversarySessions"]++
			}

			switch start.Weekday() {
			case time.Monday:
				out["mondaySessions"]++
			case time.Friday:
				out["fridaySessions"]++
			}
			if start.Hour() == 12 {
				out["lunchHourSessions"]++
			}
			if holidayDates[start.Format("01-02")] {
				out["holidayActivity"] = 1
			}
			if isNearFullMoon(start) {
				out["fullMoonSessions"]++
			}

			date := start.Format("2006-01-02")
			byDate := agentsByDate[date]
			if byDate == nil {
				byDate = map[string]bool{}
				agentsByDate[date] = byDate
			}
			byDate[agentName] = true

			if project.Valid && project.String != "" {
				if prev, seen := lastProjectDate[project.String]; seen && start.Sub(prev) >= 30*24*time.Hour {
					out["legacyReturnCount"]++
				}
				lastProjectDate[project.String] = start
			}
		}

		if endedAt.Valid && len(endedAt.String) >= 10 && len(startedAt) >= 10 &&
			endedAt.String[:10] != startedAt[:10] {
			out["midnightSpanSession"] = 1
		}
		if duration.Valid {
			d := duration.Int64
			if d > 0 && d < 300 {
				out["quickSessionCount"]++
			}
			if d > 28800 {
				out["longSessionCount"]++
			}
			if d > 0 && d <= 20 && toolCount > 0 {
				out["speedRunSession"] = 1
			}
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, agents := range agentsByDate {
		if len(agents) >= 2 {
			out["doubleAgentDays"]++
		}
	}
	// Two separately named badges watch the same computed value.
	out["agentSwitchDays"] = out["doubleAgentDays"]

	out["claudeSessions"] = agentSessions[AgentClaudeCode]
	out["geminiSessions"] = agentSessions[AgentGeminiCLI]
	out["copilotSessions"] = agentSessions[AgentCopilotCLI]
	out["opencodeSessions"] = agentSessions[AgentOpenCode]
	out["distinctAgentsUsed"] = int64(len(agentSessions))

	return nil
}

// calendarScalarStats fills the statistics that are cheapest as direct SQL.
func (a *AchievementEngine) calendarScalarStats(agent string, out map[string]int64) error {
	cond, args := agentCond(agent)

	distinctHours, err := a.stats.scalar(`SELECT MAX(c) FROM (
		SELECT COUNT(DISTINCT substr(e.timestamp, 12, 2)) AS c
		FROM events e JOIN sessions s ON e.session_id = s.id
		WHERE 1=1`+cond+`
		GROUP BY substr(e.timestamp, 1, 10))`, args...)
	if err != nil {
		return err
	}
	out["distinctHoursInOneDay"] = distinctHours

	quarters, err := a.stats.scalar(`SELECT COUNT(DISTINCT substr(s.started_at, 1, 4) || '-' ||
		((CAST(substr(s.started_at, 6, 2) AS INTEGER) + 2) / 3))
		FROM sessions s WHERE 1=1`+cond, args...)
	if err != nil {
		return err
	}
	out["distinctQuarters"] = quarters

	maxErrors, err := a.stats.scalar(`SELECT MAX(s.error_count) FROM sessions s WHERE 1=1`+cond, args...)
	if err != nil {
		return err
	}
	if maxErrors > out["maxErrorsInSession"] {
		out["maxErrorsInSession"] = maxErrors
	}

	return nil
}

// projectLifecycleStats counts finished projects: at least one commit-bearing
// bash event and no session in the last seven days.
func (a *AchievementEngine) projectLifecycleStats(agent string, out map[string]int64) error {
	cond, args := agentCond(agent)
	q := `SELECT s.project, MAX(s.started_at),
		SUM(CASE WHEN e.tool_name = 'Bash' AND e.tool_input LIKE '%git commit%' THEN 1 ELSE 0 END)
		FROM sessions s LEFT JOIN events e ON e.session_id = s.id
		WHERE s.project IS NOT NULL AND s.project != ''` + cond + `
		GROUP BY s.project`
	rows, err := a.db.Conn().Query(q, args...)
	if err != nil {
		return fmt.Errorf("project lifecycle: %w", err)
	}
	defer rows.Close()

	cutoff := time.Now().AddDate(0, 0, -7)
	for rows.Next() {
		var project, lastStart string
		var commits sql.NullInt64
		if err := rows.Scan(&project, &lastStart, &commits); err != nil {
			return err
		}
		if !commits.Valid || commits.Int64 == 0 {
			continue
		}
		if last, ok := parseStoredTime(lastStart); ok && last.Before(cutoff) {
			out["finishedProjects"]++
		}
	}
	return rows.Err()
}

// breakReturnStat detects a 7+ day gap between consecutive active dates with
// activity resuming afterward.
func (a *AchievementEngine) breakReturnStat(out map[string]int64) error {
	dates, err := a.stats.activeDates()
	if err != nil {
		return err
	}
	var prev time.Time
	for i, d := range dates {
		t, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			continue
		}
		if i > 0 && t.Sub(prev) >= 7*24*time.Hour {
			out["returnAfterBreak"] = 1
		}
		prev = t
	}
	return nil
}

// computePatternStats produces every pattern-derived statistic. All values
// default to zero on an empty log.
func (a *AchievementEngine) computePatternStats(agent string) (map[string]int64, error) {
	out := map[string]int64{}
	if err := a.toolSequenceStats(agent, out); err != nil {
		return nil, err
	}
	if err := a.promptPatternStats(agent, out); err != nil {
		return nil, err
	}
	if err := a.sessionPatternStats(agent, out); err != nil {
		return nil, err
	}
	if err := a.calendarScalarStats(agent, out); err != nil {
		return nil, err
	}
	if err := a.projectLifecycleStats(agent, out); err != nil {
		return nil, err
	}
	if err := a.breakReturnStat(out); err != nil {
		return nil, err
	}
	return out, nil
}
