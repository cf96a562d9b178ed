package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/output"
	"github.com/ledgewood/daybook/internal/render"
)

// newTodayCmd creates the today command.
func newTodayCmd() *cobra.Command {
	var dateFlag string
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Create today's journal entry",
		Long: `Create today's journal entry from the daily template.

The entry lands in entries/<date>.md with the time-tracking block and
the four reflection sections ready to fill in. An existing entry is
never overwritten; the command just prints its path again.

Examples:
  daybook today                    # Create or show today's entry
  daybook today --date 2025-07-04  # Backfill a specific day
  daybook today --json             # Output the path as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToday(cmd, dateFlag)
		},
	}
	cmd.Flags().StringVar(&dateFlag, "date", "", "Entry date in YYYY-MM-DD form (default today)")
	return cmd
}

// runToday executes the today command.
func runToday(cmd *cobra.Command, dateFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	date := time.Now().Format(journal.DateLayout)
	if dateFlag != "" {
		if _, ok := journal.ParseDateKey(dateFlag); !ok {
			err := output.NewUserError(fmt.Sprintf("invalid date %q: want YYYY-MM-DD", dateFlag))
			printer.Error(err)
			return err
		}
		date = dateFlag
	}

	st, err := resolveStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	path := st.EntryPath(date)
	if st.EntryExists(date) {
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"date":    date,
				"path":    path,
				"created": false,
			})
		}
		printer.Println("Entry already exists:", path)
		return nil
	}

	if err := st.WriteEntry(date, render.DailyEntry(date), false); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"date":    date,
			"path":    path,
			"created": true,
		})
	}
	printer.Println("Created entry:", path)
	return nil
}
