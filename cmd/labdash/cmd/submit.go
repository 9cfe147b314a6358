package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/api"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/roster"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/session"
	"github.com/UnpredictablePrashant/MCK-infra-lab/pkg/core/logging"
)

var (
	submitName  string
	submitURL   string
	submitBatch string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submits an app URL for comparison",
	Long: `Submits a student app for comparison against the baseline.

Either submit a single app with --name and --url, or a whole roster
file with --batch. A batch file is YAML mirroring the roster endpoint:

  students:
    - name: alice
      url: http://alice.example`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitName, "name", "", "student name")
	submitCmd.Flags().StringVar(&submitURL, "url", "", "app URL to compare")
	submitCmd.Flags().StringVar(&submitBatch, "batch", "", "YAML roster file to submit entry by entry")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}

	logger := logging.NewConsoleLogger(cfg.Logging.Level)
	client := api.NewClient(cfg.Server.BaseURL, uuid.NewString())
	sess := session.New(session.Config{
		Lab:            cfg.Lab.ID,
		FormLab:        cfg.Lab.FormLab,
		CompareEnabled: cfg.Lab.CompareEnabled,
	}, client, logger)

	entries := []roster.Entry{{Name: submitName, URL: submitURL}}
	if submitBatch != "" {
		entries, err = roster.Load(submitBatch)
		if err != nil {
			printError("failed to load batch roster", err)
			return err
		}
	}

	failures := 0
	for _, e := range entries {
		out := sess.Submit(cmd.Context(), e.Name, e.URL)
		printOutcome(e, out)
		if !out.OK {
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d submissions failed", failures, len(entries))
	}
	return nil
}

func printOutcome(e roster.Entry, out session.SubmitOutcome) {
	marker := "[+]"
	if !out.OK {
		marker = "[-]"
	}
	fmt.Printf("%s %s: %s\n", marker, e.Name, out.Status)

	if out.Result == nil {
		return
	}

	fmt.Printf("    %s %s\n", session.SummaryText(out.Result.Status), session.ElapsedText(out.Result.ElapsedMS))
	for _, item := range out.Result.Results {
		fmt.Printf("    %s\n      %s\n", session.CardTitle(item), session.CardText(item))
	}
}
