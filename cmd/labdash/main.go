package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/UnpredictablePrashant/MCK-infra-lab/cmd/labdash/cmd"
)

func main() {
	// Optional .env for LABDASH_CONFIG and expanded config values.
	godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
