package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/api"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/session"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Prints the leaderboard with sync status",
	RunE:  runLeaderboard,
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}

	client := api.NewClient(cfg.Server.BaseURL, uuid.NewString())
	entries, err := client.Leaderboard(cmd.Context(), cfg.Lab.ID)
	if err != nil {
		printError("failed to fetch leaderboard", err)
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No leaderboard entries yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("  %-20s %-12s %s\n", session.EntryName(e), session.SyncLabel(e.Sync), e.URL)
	}
	return nil
}
