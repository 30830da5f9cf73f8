package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"planpilot/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved business plans for a user",
	RunE:  runList,
}

var (
	listUserID      string
	listDatabaseURL string
	listLimit       int
)

func init() {
	listCmd.Flags().StringVarP(&listUserID, "user-id", "u", "", "User ID (required)")
	listCmd.Flags().StringVar(&listDatabaseURL, "db-url", "", "Database URL")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of plans to list")

	if err := listCmd.MarkFlagRequired("user-id"); err != nil {
		panic(fmt.Sprintf("failed to mark user-id flag as required: %v", err))
	}

	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	dbURL := listDatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable or use --db-url flag)")
	}

	userID, err := uuid.Parse(listUserID)
	if err != nil {
		return fmt.Errorf("invalid user-id: %w", err)
	}

	primary, err := store.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer primary.Close()

	records, err := primary.List(ctx, userID, listLimit)
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No plans found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSECTIONS\tCREATED")
	for i := range records {
		rec := &records[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			rec.ID, rec.Title, rec.Category, len(rec.Sections),
			rec.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
