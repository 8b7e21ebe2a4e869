// Package app contains the Cobra command tree for bashstats.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bashstats/internal/config"
	"github.com/blackwell-systems/bashstats/internal/output"
	"github.com/blackwell-systems/bashstats/internal/store"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
	flagAgent   string
)

var rootCmd = &cobra.Command{
	Use:   "bashstats",
	Short: "Gamified activity stats for coding agents",
	Long: `bashstats tracks your coding agent activity through hook events: sessions,
prompts, tool calls, errors, commits, and token usage land in a local SQLite
event log. On top of that log it computes lifetime stats, streaks, achievement
badges with tiered progress, XP with an exponential rank ladder, and weekly
challenges.

Run 'bashstats stats' for the summary, or 'bashstats achievements' for the
badge board.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			output.SetNoColor(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("bashstats", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  stats         Lifetime totals, tool breakdown, streaks, and records")
		fmt.Println("  achievements  Badge board with tiers, XP, and rank")
		fmt.Println("  streak        Daily streak and 30-day activity calendar")
		fmt.Println("  weekly        This week's challenges and XP multiplier")
		fmt.Println("  hook          Ingest one hook event from stdin (wired into agent config)")
		fmt.Println("  serve         Local dashboard JSON API")
		fmt.Println("  mcp           MCP stdio server for in-session queries")
		fmt.Println("  export        Dump all stats and activity as JSON")
		fmt.Println("  reset         Delete all tracked data")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bashstats/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// openStore loads config and opens the event log database.
func openStore() (*store.DB, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return db, cfg, nil
}
