package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/api"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/push"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/session"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/tui/dashboard"
	"github.com/UnpredictablePrashant/MCK-infra-lab/pkg/core/logging"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Starts the live grading dashboard TUI",
	Long: `Starts the live grading dashboard.

The dashboard keeps a persistent connection to the server's push
channel, shows the automation log and both countdown timers, and lets
you submit your app and watch the roster and leaderboard update.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}

	// Diagnostics go to a file; the TUI owns the terminal.
	logger, closer, err := logging.NewFileLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		printError("failed to open log file", err)
		return err
	}
	defer closer.Close()

	sessionID := uuid.NewString()
	client := api.NewClient(cfg.Server.BaseURL, sessionID)

	sess := session.New(session.Config{
		Lab:                    cfg.Lab.ID,
		FormLab:                cfg.Lab.FormLab,
		CompareEnabled:         cfg.Lab.CompareEnabled,
		SyncCheckSeconds:       int(cfg.Timers.SyncCheckInterval.Seconds()),
		InitialAutoFillSeconds: int(cfg.Timers.InitialAutoFill.Seconds()),
		LogCapacity:            cfg.UI.MaxLogLines,
	}, client, logger)

	pc := push.NewClient(cfg.PushURL(), logger,
		push.WithBackoff(cfg.UI.ReconnectDelay.Duration),
		push.WithSessionID(sessionID),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	logger.Info().Str("server", cfg.Server.BaseURL).Str("lab", cfg.Lab.ID).
		Msg("dashboard starting")

	if err := dashboard.Run(ctx, sess, pc); err != nil {
		printError("dashboard failed", err)
		return err
	}
	return nil
}
