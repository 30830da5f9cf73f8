package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planpilot/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <plan-id>",
	Short: "Print a previously saved business plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showDatabaseURL string

func init() {
	showCmd.Flags().StringVar(&showDatabaseURL, "db-url", "", "Database URL")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	dbURL := showDatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable or use --db-url flag)")
	}

	primary, err := store.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer primary.Close()

	rec, err := primary.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("plan not found: %s", args[0])
	}

	fmt.Fprint(os.Stdout, renderDocument(rec.Document()))
	return nil
}
