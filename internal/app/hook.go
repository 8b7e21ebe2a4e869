package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bashstats/internal/config"
	"github.com/blackwell-systems/bashstats/internal/engine"
	"github.com/blackwell-systems/bashstats/internal/hooks"
	"github.com/blackwell-systems/bashstats/internal/store"
)

var hookCmd = &cobra.Command{
	Use:   "hook <event>",
	Short: "Ingest one hook event from stdin",
	Long: `Read a hook payload from stdin and record it in the event log. This is
the command agent hook configurations invoke; it is not meant to be run
by hand.

The agent is detected from the environment. Gemini CLI and Copilot CLI
event names and payload shapes are normalized to the common vocabulary
before recording. Unknown events and malformed payloads are dropped
silently so a misconfigured hook never breaks an agent session.`,
	Args:   cobra.ExactArgs(1),
	Hidden: true,
	RunE:   runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	event := args[0]

	raw, err := hooks.ReadPayload(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading hook payload: %w", err)
	}

	agent := hooks.DetectAgent()
	hookType := event

	// Foreign agents use their own event vocabulary.
	switch agent {
	case engine.AgentGeminiCLI:
		n, ok := hooks.NormalizeGemini(event, raw)
		if !ok {
			return nil
		}
		hookType, raw = n.HookType, n.Payload
	case engine.AgentCopilotCLI:
		n, ok := hooks.NormalizeCopilot(event, raw)
		if !ok {
			return nil
		}
		hookType, raw = n.HookType, n.Payload
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := hooks.NewHandler(db, agent).Handle(hookType, raw); err != nil {
		return err
	}

	if hookType == store.HookStop && cfg.Notify {
		announceUnlocks(db)
	}
	return nil
}

// announceUnlocks evaluates badges at session end and prints any fresh
// unlocks to stderr. Stderr keeps the hook's stdout clean for agents that
// parse it. Failures are swallowed so notification can never break a hook.
func announceUnlocks(db *store.DB) {
	achievements := engine.NewAchievementEngine(db)
	if _, err := achievements.ComputeBadges(""); err != nil {
		return
	}
	unlocks, err := db.GetUnnotifiedUnlocks()
	if err != nil {
		return
	}
	for _, u := range unlocks {
		if def := engine.BadgeByID(u.BadgeID); def != nil {
			fmt.Fprintf(os.Stderr, "bashstats: unlocked %s %s (%s)\n",
				def.Icon, def.Name, engine.TierName(u.Tier))
		}
		_ = db.MarkNotified(u.BadgeID, u.Tier)
	}
}
