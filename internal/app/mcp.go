package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bashstats/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server for in-session stat queries",
	Long: `Start a Model Context Protocol stdio server that a coding agent can
query during a session. The server exposes three tools:

  bashstats_overview      Rank, XP, streak, lifetime totals, and today's activity
  bashstats_achievements  Badge progress and recent unlocks
  bashstats_goals         Weekly challenge status

Add to your agent's MCP configuration:
  {"mcpServers":{"bashstats":{"command":"bashstats","args":["mcp"]}}}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	srv := mcp.NewServer(db, appVersion)
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}
