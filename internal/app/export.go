package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bashstats/internal/engine"
	"github.com/blackwell-systems/bashstats/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all stats and activity as JSON",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

// exportPayload is the full JSON dump written by the export command.
type exportPayload struct {
	ExportedAt    string                      `json:"exported_at"`
	Stats         *engine.AllStats            `json:"stats"`
	Achievements  *engine.AchievementsPayload `json:"achievements"`
	Weekly        *engine.WeeklyGoalsPayload  `json:"weekly"`
	DailyActivity []store.DailyActivity       `json:"daily_activity"`
}

func runExport(cmd *cobra.Command, args []string) error {
	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	stats := engine.NewStatsEngine(db)
	achievements := engine.NewAchievementEngine(db)
	weekly := engine.NewWeeklyEngine(db)

	all, err := stats.GetAllStats("")
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}
	payload, err := achievements.GetAchievementsPayload("")
	if err != nil {
		return fmt.Errorf("computing achievements: %w", err)
	}
	goals, err := weekly.GetWeeklyGoalsPayload()
	if err != nil {
		return fmt.Errorf("computing weekly goals: %w", err)
	}
	daily, err := db.GetAllDailyActivity(0)
	if err != nil {
		return fmt.Errorf("loading daily activity: %w", err)
	}

	out := exportPayload{
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		Stats:         all,
		Achievements:  payload,
		Weekly:        goals,
		DailyActivity: daily,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
