package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bashstats/internal/engine"
	"github.com/blackwell-systems/bashstats/internal/output"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Daily streak and 30-day activity calendar",
	RunE:  runStreak,
}

func init() {
	streakCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(streakCmd)
}

func runStreak(cmd *cobra.Command, args []string) error {
	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	stats := engine.NewStatsEngine(db)
	tm, err := stats.GetTimeStats("")
	if err != nil {
		return fmt.Errorf("computing time stats: %w", err)
	}
	daily, err := db.GetAllDailyActivity(30)
	if err != nil {
		return fmt.Errorf("loading daily activity: %w", err)
	}

	if flagJSON {
		out := struct {
			CurrentStreak int      `json:"currentStreak"`
			LongestStreak int      `json:"longestStreak"`
			ActiveDates   []string `json:"activeDates"`
		}{CurrentStreak: tm.CurrentStreak, LongestStreak: tm.LongestStreak}
		for _, d := range daily {
			out.ActiveDates = append(out.ActiveDates, d.Date)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(output.Section("Streak"))
	statLine("Current streak", fmt.Sprintf("%d days", tm.CurrentStreak))
	statLine("Longest streak", fmt.Sprintf("%d days", tm.LongestStreak))

	if len(daily) > 0 {
		active := make(map[string]bool, len(daily))
		for _, d := range daily {
			active[d.Date] = true
		}

		var cal strings.Builder
		today := time.Now()
		for i := 29; i >= 0; i-- {
			date := today.AddDate(0, 0, -i).Format("2006-01-02")
			if active[date] {
				cal.WriteString(output.StyleSuccess.Render("█"))
			} else {
				cal.WriteString(output.StyleMuted.Render("░"))
			}
		}
		fmt.Println()
		fmt.Printf(" %s\n", output.StyleMuted.Render("Last 30 days"))
		fmt.Printf(" %s\n", cal.String())
	}

	fmt.Println()
	return nil
}
