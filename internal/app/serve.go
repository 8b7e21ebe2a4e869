package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bashstats/internal/dashboard"
	"github.com/blackwell-systems/bashstats/internal/output"
)

var (
	servePort int
	serveHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local dashboard JSON API",
	Long: `Start the dashboard API on loopback. Endpoints:

  /api/health        Server status
  /api/stats         All aggregate stat views (?agent= to filter)
  /api/achievements  Badge board, XP, and rank (?agent= to filter)
  /api/activity      Daily activity rollup (?days=, default 365)
  /api/sessions      100 most recent sessions
  /api/agents        Per-agent session and hour breakdown
  /api/weekly        Current weekly challenges`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	db, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	host := cfg.Dashboard.Host
	if serveHost != "" {
		host = serveHost
	}
	port := cfg.Dashboard.Port
	if servePort != 0 {
		port = servePort
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	srv := dashboard.New(db, addr, appVersion)

	fmt.Printf(" %s %s\n",
		output.StyleHeader.Render("bashstats dashboard"),
		output.StyleMuted.Render("http://"+addr))
	return srv.Run(cmd.Context())
}
