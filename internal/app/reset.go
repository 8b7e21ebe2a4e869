package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all tracked data",
	Long: `Wipe every table in the event log: sessions, events, prompts, daily
activity, achievement unlocks, and weekly goals. Asks for confirmation
unless --force is given.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		fmt.Print("This permanently deletes all tracked data. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return fmt.Errorf("resetting database: %w", err)
	}
	if err := db.SetMetadata("first_run", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("recording reset time: %w", err)
	}

	fmt.Println("All data has been reset. Starting fresh.")
	return nil
}
