// Package main provides the planpilot CLI for generating and managing
// business plans.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planpilot",
	Short: "Business plan generation pipeline",
	Long:  "planpilot turns free-form questionnaire answers into a structured, category-aware business plan: it classifies the business stage, gathers market research, generates each plan section with an LLM, and persists the result.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
