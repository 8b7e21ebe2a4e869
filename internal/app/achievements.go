package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bashstats/internal/engine"
	"github.com/blackwell-systems/bashstats/internal/output"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Badge board with tiers, XP, and rank",
	Long: `Display every badge with its current tier, value, and progress toward the
next threshold, grouped by category. Secret badges stay hidden until
unlocked. The header shows total XP and rank placement.`,
	RunE: runAchievements,
}

func init() {
	achievementsCmd.Flags().StringVar(&flagAgent, "agent", "", "Filter to one agent (claude-code, gemini-cli, copilot-cli, opencode)")
	achievementsCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(achievementsCmd)
}

// categoryOrder fixes the board section order.
var categoryOrder = []string{
	engine.CategoryVolume,
	engine.CategoryToolMastery,
	engine.CategoryToolCombos,
	engine.CategoryShipping,
	engine.CategoryTime,
	engine.CategoryBehavioral,
	engine.CategorySessionBehavior,
	engine.CategoryPromptPatterns,
	engine.CategoryResilience,
	engine.CategoryErrorRecovery,
	engine.CategoryProjectDedication,
	engine.CategoryMultiAgent,
	engine.CategoryTokenUsage,
	engine.CategoryWildCard,
	engine.CategoryAspirational,
	engine.CategorySecret,
}

var categoryTitles = map[string]string{
	engine.CategoryVolume:            "Volume",
	engine.CategoryToolMastery:       "Tool Mastery",
	engine.CategoryToolCombos:        "Tool Combos",
	engine.CategoryShipping:          "Shipping",
	engine.CategoryTime:              "Time & Streaks",
	engine.CategoryBehavioral:        "Behavioral",
	engine.CategorySessionBehavior:   "Session Behavior",
	engine.CategoryPromptPatterns:    "Prompt Patterns",
	engine.CategoryResilience:        "Resilience",
	engine.CategoryErrorRecovery:     "Error Recovery",
	engine.CategoryProjectDedication: "Project Dedication",
	engine.CategoryMultiAgent:        "Multi-Agent",
	engine.CategoryTokenUsage:        "Token Usage",
	engine.CategoryWildCard:          "Wild Card",
	engine.CategoryAspirational:      "Aspirational",
	engine.CategorySecret:            "Secret",
}

func runAchievements(cmd *cobra.Command, args []string) error {
	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	achievements := engine.NewAchievementEngine(db)
	payload, err := achievements.GetAchievementsPayload(flagAgent)
	if err != nil {
		return fmt.Errorf("computing achievements: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	xp := payload.XP
	fmt.Println(output.Section("Achievements"))
	fmt.Printf(" %s\n", output.XPLine(xp.TotalXP, xp.RankNumber, xp.RankTier))
	fmt.Printf(" %s\n", output.ProgressBar(xp.Progress, 40))

	byCategory := make(map[string][]engine.BadgeResult)
	for _, b := range payload.Badges {
		// Secret badges stay hidden until unlocked.
		if b.Secret && !b.Unlocked {
			continue
		}
		byCategory[b.Category] = append(byCategory[b.Category], b)
	}

	for _, cat := range categoryOrder {
		badges := byCategory[cat]
		if len(badges) == 0 {
			continue
		}
		fmt.Println(output.Section(categoryTitles[cat]))
		for _, b := range badges {
			renderBadge(b)
		}
	}

	fmt.Println()
	return nil
}

func renderBadge(b engine.BadgeResult) {
	tier := output.TierBadge(b.Tier, fmt.Sprintf("[%s]", b.TierName))
	name := fmt.Sprintf("%-24s", b.Name)

	var progress string
	if b.Maxed {
		progress = output.StyleSuccess.Render("MAXED")
	} else {
		progress = fmt.Sprintf("%s / %s %s",
			output.Comma(b.Value), output.Comma(b.NextThreshold), output.ProgressBar(b.Progress, 15))
	}

	fmt.Printf(" %s %-13s %s %s\n", b.Icon, tier, output.StyleBold.Render(name), progress)
	if b.Secret || b.Category == engine.CategoryWildCard {
		fmt.Printf("   %s\n", output.StyleMuted.Render(`"`+b.Description+`"`))
	}
}
