// Package hooks ingests agent hook events into the bashstats event log.
package hooks

import (
	"encoding/json"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/blackwell-systems/bashstats/internal/store"
)

// Writer records hook events into the store. One hook invocation maps to one
// Writer call; every write keeps the session counters and daily rollup in
// step with the event rows.
type Writer struct {
	db *store.DB
	// now is swappable for tests.
	now func() time.Time
}

// NewWriter returns a Writer backed by db.
func NewWriter(db *store.DB) *Writer {
	return &Writer{db: db, now: time.Now}
}

// timestamp formats the current local wall time in the stored millisecond
// format.
func (w *Writer) timestamp() string {
	return w.now().Format("2006-01-02T15:04:05.000")
}

func (w *Writer) today() string {
	return w.now().Format("2006-01-02")
}

func projectFromCwd(cwd string) *string {
	if cwd == "" {
		return nil
	}
	p := filepath.Base(cwd)
	return &p
}

// RecordSessionStart creates the session row, logs the start event, and bumps
// the daily session counter. Duplicate starts for the same id are ignored.
func (w *Writer) RecordSessionStart(sessionID, cwd, source, agent string) error {
	ts := w.timestamp()
	project := projectFromCwd(cwd)

	if err := w.db.InsertSession(sessionID, agent, ts, project); err != nil {
		return err
	}

	input, _ := json.Marshal(map[string]string{"source": source})
	inputStr := string(input)
	if _, err := w.db.InsertEvent(&store.Event{
		SessionID: sessionID,
		HookType:  store.HookSessionStart,
		ToolInput: &inputStr,
		CWD:       strOrNil(cwd),
		Project:   project,
		Timestamp: ts,
	}); err != nil {
		return err
	}

	return w.db.IncrementDailyActivity(w.today(), store.DailyIncrements{Sessions: 1})
}

// RecordPrompt stores the prompt text and bumps prompt counters.
func (w *Writer) RecordPrompt(sessionID, content string) error {
	ts := w.timestamp()

	words := 0
	inWord := false
	for _, r := range content {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
		} else if !inWord {
			words++
			inWord = true
		}
	}

	if _, err := w.db.InsertPrompt(&store.Prompt{
		SessionID: sessionID,
		Content:   content,
		CharCount: utf8.RuneCountInString(content),
		WordCount: words,
		Timestamp: ts,
	}); err != nil {
		return err
	}

	if _, err := w.db.InsertEvent(&store.Event{
		SessionID: sessionID,
		HookType:  store.HookUserPromptSubmit,
		Timestamp: ts,
	}); err != nil {
		return err
	}

	if err := w.db.IncrementSessionCounters(sessionID, store.CounterIncrements{Prompts: 1}); err != nil {
		return err
	}
	return w.db.IncrementDailyActivity(w.today(), store.DailyIncrements{Prompts: 1})
}

// RecordToolUse logs one tool event. A nonzero exit code marks a failure and
// bumps the error counters.
func (w *Writer) RecordToolUse(sessionID, hookType, toolName string, toolInput, toolOutput []byte, exitCode int, cwd string) error {
	ts := w.timestamp()
	project := projectFromCwd(cwd)
	success := 1
	if exitCode != 0 {
		success = 0
	}

	if _, err := w.db.InsertEvent(&store.Event{
		SessionID:  sessionID,
		HookType:   hookType,
		ToolName:   strOrNil(toolName),
		ToolInput:  jsonOrNil(toolInput),
		ToolOutput: jsonOrNil(toolOutput),
		ExitCode:   &exitCode,
		Success:    &success,
		CWD:        strOrNil(cwd),
		Project:    project,
		Timestamp:  ts,
	}); err != nil {
		return err
	}

	errs := 0
	if success == 0 {
		errs = 1
	}
	if err := w.db.IncrementSessionCounters(sessionID, store.CounterIncrements{Tools: 1, Errors: errs}); err != nil {
		return err
	}
	return w.db.IncrementDailyActivity(w.today(), store.DailyIncrements{ToolCalls: 1, Errors: errs})
}

// RecordSessionEnd finalizes the session: end timestamp, stop reason,
// duration, and any token usage extracted from the transcript.
func (w *Writer) RecordSessionEnd(sessionID, stopReason string, tokens *store.TokenUsage) error {
	ts := w.timestamp()

	var duration *int64
	session, err := w.db.GetSession(sessionID)
	if err != nil {
		return err
	}
	if session != nil {
		if start, perr := time.ParseInLocation("2006-01-02T15:04:05.000", session.StartedAt, time.Local); perr == nil {
			d := int64(w.now().Sub(start).Round(time.Second).Seconds())
			if d < 0 {
				d = 0
			}
			duration = &d
		}
	}

	if err := w.db.UpdateSession(sessionID, store.SessionUpdate{
		EndedAt:         &ts,
		StopReason:      &stopReason,
		DurationSeconds: duration,
	}); err != nil {
		return err
	}
	if tokens != nil {
		if err := w.db.UpdateSessionTokens(sessionID, *tokens); err != nil {
			return err
		}
	}

	input, _ := json.Marshal(map[string]string{"stop_reason": stopReason})
	inputStr := string(input)
	if _, err := w.db.InsertEvent(&store.Event{
		SessionID: sessionID,
		HookType:  store.HookStop,
		ToolInput: &inputStr,
		Timestamp: ts,
	}); err != nil {
		return err
	}

	inc := store.DailyIncrements{}
	if duration != nil {
		inc.DurationSeconds = *duration
	}
	if tokens != nil {
		inc.InputTokens = tokens.InputTokens
		inc.OutputTokens = tokens.OutputTokens
		inc.CacheCreationInputTokens = tokens.CacheCreationInputTokens
		inc.CacheReadInputTokens = tokens.CacheReadInputTokens
	}
	if inc != (store.DailyIncrements{}) {
		return w.db.IncrementDailyActivity(w.today(), inc)
	}
	return nil
}

// RecordNotification logs a notification event. Error and rate-limit flavors
// count toward the error totals.
func (w *Writer) RecordNotification(sessionID, message, notificationType string) error {
	ts := w.timestamp()

	input, _ := json.Marshal(map[string]string{
		"message":           message,
		"notification_type": notificationType,
	})
	inputStr := string(input)
	if _, err := w.db.InsertEvent(&store.Event{
		SessionID: sessionID,
		HookType:  store.HookNotification,
		ToolInput: &inputStr,
		Timestamp: ts,
	}); err != nil {
		return err
	}

	if notificationType == "error" || notificationType == "rate_limit" {
		if err := w.db.IncrementSessionCounters(sessionID, store.CounterIncrements{Errors: 1}); err != nil {
			return err
		}
		return w.db.IncrementDailyActivity(w.today(), store.DailyIncrements{Errors: 1})
	}
	return nil
}

// RecordSubagent logs a subagent lifecycle event.
func (w *Writer) RecordSubagent(sessionID, hookType, agentID, agentType string) error {
	input, _ := json.Marshal(map[string]string{
		"agent_id":   agentID,
		"agent_type": agentType,
	})
	inputStr := string(input)
	_, err := w.db.InsertEvent(&store.Event{
		SessionID: sessionID,
		HookType:  hookType,
		ToolInput: &inputStr,
		Timestamp: w.timestamp(),
	})
	return err
}

// RecordCompaction logs a context compaction event.
func (w *Writer) RecordCompaction(sessionID, trigger string) error {
	input, _ := json.Marshal(map[string]string{"trigger": trigger})
	inputStr := string(input)
	_, err := w.db.InsertEvent(&store.Event{
		SessionID: sessionID,
		HookType:  store.HookPreCompact,
		ToolInput: &inputStr,
		Timestamp: w.timestamp(),
	})
	return err
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func jsonOrNil(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	s := string(b)
	return &s
}
