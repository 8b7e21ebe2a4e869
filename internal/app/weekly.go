package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bashstats/internal/engine"
	"github.com/blackwell-systems/bashstats/internal/output"
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "This week's challenges and XP multiplier",
	Long: `Show the three challenges selected for the current week, each with its
progress and XP reward, plus the active-day multiplier. The selection is
deterministic per week, so every invocation sees the same challenges.`,
	RunE: runWeekly,
}

func init() {
	weeklyCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(weeklyCmd)
}

func runWeekly(cmd *cobra.Command, args []string) error {
	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	weekly := engine.NewWeeklyEngine(db)
	payload, err := weekly.GetWeeklyGoalsPayload()
	if err != nil {
		return fmt.Errorf("computing weekly goals: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	fmt.Println(output.Section("Weekly Challenges"))
	statLine("Week of", payload.WeekStart)
	statLine("Days active", fmt.Sprintf("%d / 7", payload.DaysActive))
	statLine("Multiplier", fmt.Sprintf("%.2fx", payload.Multiplier))
	fmt.Println()

	for _, c := range payload.Challenges {
		mark := output.StyleMuted.Render("[ ]")
		if c.Completed {
			mark = output.StyleSuccess.Render("[✓]")
		}
		fmt.Printf(" %s %s %s\n", mark,
			output.StyleBold.Render(fmt.Sprintf("%-38s", c.Description)),
			output.StyleMuted.Render(fmt.Sprintf("+%d XP", c.XPReward)))
		fmt.Printf("     %s %s\n",
			output.ProgressBar(c.Progress, 20),
			output.StyleMuted.Render(fmt.Sprintf("%s / %s", output.Comma(c.Current), output.Comma(c.Threshold))))
	}

	fmt.Println()
	return nil
}
