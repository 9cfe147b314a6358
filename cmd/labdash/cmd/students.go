package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/api"
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Prints the registered student apps",
	RunE:  runStudents,
}

func init() {
	rootCmd.AddCommand(studentsCmd)
}

func runStudents(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}

	client := api.NewClient(cfg.Server.BaseURL, uuid.NewString())
	students, err := client.Students(cmd.Context(), cfg.Lab.ID)
	if err != nil {
		printError("failed to fetch students", err)
		return err
	}

	if len(students) == 0 {
		fmt.Println("No student apps registered yet.")
		return nil
	}

	for _, s := range students {
		fmt.Printf("  %-20s %s\n", s.Name, s.URL)
	}
	return nil
}
