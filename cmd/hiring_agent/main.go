// Package main provides the entry point for the hiring agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hiring_agent",
	Short: "Candidate scoring and decision explainability engine",
	Long:  "Scores resume evidence against a job description, decides a hiring action per candidate via an ordered decision list, and explains every decision with attributions, counterfactuals, and a batch ranking.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
