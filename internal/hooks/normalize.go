package hooks

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/bashstats/internal/store"
)

// Normalized is a foreign hook event translated to the common vocabulary.
type Normalized struct {
	HookType string
	Payload  []byte
}

// NormalizeGemini maps a Gemini CLI hook event onto the common shape.
// Events with no equivalent return ok=false.
func NormalizeGemini(event string, raw []byte) (*Normalized, bool) {
	var hookType string
	switch event {
	case "SessionStart":
		hookType = store.HookSessionStart
	case "SessionEnd":
		hookType = store.HookStop
	case "BeforeAgent":
		hookType = store.HookUserPromptSubmit
	case "BeforeTool":
		hookType = store.HookPreToolUse
	case "AfterTool":
		hookType = store.HookPostToolUse
	case "PreCompress":
		hookType = store.HookPreCompact
	case "Notification":
		hookType = store.HookNotification
	default:
		return nil, false
	}
	return &Normalized{HookType: hookType, Payload: raw}, true
}

// copilotSessionID derives a stable session id for Copilot events. Copilot
// payloads carry no session_id; the parent process is the Copilot CLI itself
// and stays fixed for the whole session, so PPID plus the date is consistent
// across hook invocations.
func copilotSessionID() string {
	return fmt.Sprintf("copilot-%d-%s", os.Getppid(), time.Now().Format("2006-01-02"))
}

// copilotEvent is the subset of a Copilot hook payload the normalizer reads.
// toolArgs arrives as a stringified JSON document, not an object.
type copilotEvent struct {
	Source     string          `json:"source"`
	Cwd        string          `json:"cwd"`
	Prompt     string          `json:"prompt"`
	ToolName   string          `json:"toolName"`
	ToolArgs   string          `json:"toolArgs"`
	ToolResult json.RawMessage `json:"toolResult"`
	Error      string          `json:"error"`
}

// copilotToolFailed reports whether a toolResult marks a failure. Result
// types "failure" and "denied" fail; everything else succeeds.
func copilotToolFailed(result json.RawMessage) bool {
	var r struct {
		ResultType string `json:"resultType"`
	}
	if err := json.Unmarshal(result, &r); err != nil {
		return false
	}
	return r.ResultType == "failure" || r.ResultType == "denied"
}

// NormalizeCopilot maps a Copilot CLI hook event onto the common shape.
func NormalizeCopilot(event string, raw []byte) (*Normalized, bool) {
	var ev copilotEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, false
	}
	sessionID := copilotSessionID()

	common := map[string]any{"session_id": sessionID}
	if ev.Cwd != "" {
		common["cwd"] = ev.Cwd
	}

	var hookType string
	switch event {
	case "sessionStart":
		hookType = store.HookSessionStart
		if ev.Source == "resume" {
			common["source"] = "resume"
		} else {
			common["source"] = "startup"
		}

	case "sessionEnd":
		hookType = store.HookStop

	case "userPromptSubmitted":
		hookType = store.HookUserPromptSubmit
		common["prompt"] = ev.Prompt

	case "preToolUse":
		hookType = store.HookPreToolUse
		common["tool_name"] = ev.ToolName
		common["tool_input"] = parseToolArgs(ev.ToolArgs)

	case "postToolUse":
		hookType = store.HookPostToolUse
		common["tool_name"] = ev.ToolName
		common["tool_input"] = parseToolArgs(ev.ToolArgs)
		if len(ev.ToolResult) > 0 {
			common["tool_response"] = json.RawMessage(ev.ToolResult)
		}
		if copilotToolFailed(ev.ToolResult) {
			hookType = store.HookPostToolUseFailure
		}

	case "errorOccurred":
		hookType = store.HookPostToolUseFailure
		common["tool_name"] = "_error"
		common["tool_input"] = map[string]string{"error": ev.Error}

	default:
		return nil, false
	}

	payload, err := json.Marshal(common)
	if err != nil {
		return nil, false
	}
	return &Normalized{HookType: hookType, Payload: payload}, true
}

// parseToolArgs parses a stringified toolArgs document, returning an empty
// object on any failure.
func parseToolArgs(args string) map[string]any {
	out := map[string]any{}
	if args == "" {
		return out
	}
	if err := json.Unmarshal([]byte(args), &out); err != nil {
		return map[string]any{}
	}
	return out
}
