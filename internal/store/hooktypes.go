package store

// Hook type vocabulary recorded on events. These mirror the hook names the
// agent CLIs fire; normalizers map foreign hook names onto this set.
const (
	HookSessionStart       = "SessionStart"
	HookUserPromptSubmit   = "UserPromptSubmit"
	HookPreToolUse         = "PreToolUse"
	HookPostToolUse        = "PostToolUse"
	HookPostToolUseFailure = "PostToolUseFailure"
	HookStop               = "Stop"
	HookNotification       = "Notification"
	HookSubagentStart      = "SubagentStart"
	HookSubagentStop       = "SubagentStop"
	HookPreCompact         = "PreCompact"
	HookPermissionRequest  = "PermissionRequest"
	HookSetup              = "Setup"
)
