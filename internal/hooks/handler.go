package hooks

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/bashstats/internal/store"
)

// Event is the parsed common hook payload. Foreign agent payloads are
// normalized to this shape before dispatch.
type Event struct {
	SessionID        string          `json:"session_id"`
	Cwd              string          `json:"cwd"`
	Source           string          `json:"source"`
	Prompt           string          `json:"prompt"`
	ToolName         string          `json:"tool_name"`
	ToolInput        json.RawMessage `json:"tool_input"`
	ToolResponse     json.RawMessage `json:"tool_response"`
	ExitCode         *int            `json:"exit_code"`
	Message          string          `json:"message"`
	NotificationType string          `json:"notification_type"`
	AgentID          string          `json:"agent_id"`
	AgentType        string          `json:"agent_type"`
	Trigger          string          `json:"trigger"`
	TranscriptPath   string          `json:"transcript_path"`
}

// DetectAgent identifies which CLI fired the hook from its environment.
func DetectAgent() string {
	if os.Getenv("GEMINI_CLI") != "" || os.Getenv("GEMINI_API_KEY") != "" {
		return "gemini-cli"
	}
	if os.Getenv("GITHUB_COPILOT_CLI") != "" {
		return "copilot-cli"
	}
	if os.Getenv("OPENCODE") != "" {
		return "opencode"
	}
	return "claude-code"
}

// ReadPayload returns the raw hook payload: the CLAUDE_HOOK_EVENT override if
// set, otherwise everything on r.
func ReadPayload(r io.Reader) ([]byte, error) {
	if env := os.Getenv("CLAUDE_HOOK_EVENT"); env != "" {
		return []byte(env), nil
	}
	return io.ReadAll(r)
}

// Handler dispatches parsed hook events to the writer.
type Handler struct {
	writer *Writer
	agent  string
}

// NewHandler returns a Handler writing to db on behalf of the detected agent.
func NewHandler(db *store.DB, agent string) *Handler {
	return &Handler{writer: NewWriter(db), agent: agent}
}

// Handle parses raw and records the event. Empty or malformed payloads are
// ignored: a hook must never break the agent session it observes.
func (h *Handler) Handle(hookType string, raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil
	}

	switch hookType {
	case store.HookSessionStart:
		source := ev.Source
		if source == "" {
			source = "startup"
		}
		return h.writer.RecordSessionStart(ev.SessionID, ev.Cwd, source, h.agent)

	case store.HookUserPromptSubmit:
		return h.writer.RecordPrompt(ev.SessionID, ev.Prompt)

	case store.HookPreToolUse, store.HookPermissionRequest:
		return h.writer.RecordToolUse(ev.SessionID, hookType, ev.ToolName, ev.ToolInput, nil, 0, ev.Cwd)

	case store.HookPostToolUse:
		exitCode := 0
		if ev.ExitCode != nil {
			exitCode = *ev.ExitCode
		}
		return h.writer.RecordToolUse(ev.SessionID, hookType, ev.ToolName, ev.ToolInput, ev.ToolResponse, exitCode, ev.Cwd)

	case store.HookPostToolUseFailure:
		return h.writer.RecordToolUse(ev.SessionID, hookType, ev.ToolName, ev.ToolInput, ev.ToolResponse, 1, ev.Cwd)

	case store.HookStop:
		var tokens *store.TokenUsage
		if strings.HasSuffix(ev.TranscriptPath, ".jsonl") {
			path, err := filepath.Abs(ev.TranscriptPath)
			if err == nil {
				// Transcript problems never fail the hook.
				tokens, _ = ExtractTokenUsage(path)
			}
		}
		return h.writer.RecordSessionEnd(ev.SessionID, "stopped", tokens)

	case store.HookNotification:
		return h.writer.RecordNotification(ev.SessionID, ev.Message, ev.NotificationType)

	case store.HookSubagentStart:
		return h.writer.RecordSubagent(ev.SessionID, store.HookSubagentStart, ev.AgentID, ev.AgentType)

	case store.HookSubagentStop:
		return h.writer.RecordSubagent(ev.SessionID, store.HookSubagentStop, ev.AgentID, "")

	case store.HookPreCompact:
		trigger := ev.Trigger
		if trigger == "" {
			trigger = "manual"
		}
		return h.writer.RecordCompaction(ev.SessionID, trigger)

	case store.HookSetup:
		return nil
	}

	return nil
}
