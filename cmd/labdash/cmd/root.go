package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UnpredictablePrashant/MCK-infra-lab/pkg/core/config"
)

var (
	cfgFile   string
	serverURL string
	labID     string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "labdash",
	Short: "labdash - terminal client for the lab grading dashboard",
	Long: `labdash is the terminal client of the MCK infra-lab grading dashboard.

It submits student app URLs for comparison against the baseline,
follows the instructor's automation log live over the push channel,
and shows the roster and leaderboard for the active lab.

Commands:
  dashboard   - live TUI with log, timers, roster and leaderboard
  submit      - submit one app (or a batch roster) for comparison
  students    - print the registered student apps
  leaderboard - print the leaderboard with sync status`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./labdash.toml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "grading server base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&labID, "lab", "", "active lab identifier (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig resolves configuration from file, environment and flags.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if serverURL != "" {
		cfg.Server.BaseURL = serverURL
	}
	if labID != "" {
		cfg.Lab.ID = labID
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
