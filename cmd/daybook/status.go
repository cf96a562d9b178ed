package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/output"
	"github.com/ledgewood/daybook/internal/rollup"
	"github.com/ledgewood/daybook/internal/store"
)

// statusResult holds the data for status output.
type statusResult struct {
	Dir             string   `json:"dir"`
	DirExists       bool     `json:"dir_exists"`
	TotalEntries    int      `json:"total_entries"`
	DaysLogged      int      `json:"days_logged"`
	LatestEntry     string   `json:"latest_entry,omitempty"`
	CurrentStreak   int      `json:"current_streak"`
	CurrentWeekWork string   `json:"current_week_work_time"`
	TotalWork       string   `json:"total_work_time"`
	SkippedFiles    []string `json:"skipped_files,omitempty"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show journal statistics",
		Long: `Show journal statistics without writing anything.

Displays the journal location, entry and day counts, the latest entry,
the current streak, and work-time totals. Unlike aggregate, status
never touches the generated files.

Examples:
  daybook status         # Show human-readable statistics
  daybook status --json  # Output statistics as JSON for scripting`,
		RunE: runStatus,
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	st, err := resolveStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := gatherStatus(st)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanStatus(printer, result)
	return nil
}

// gatherStatus collects all journal statistics.
func gatherStatus(st *store.Store) (*statusResult, error) {
	docs, skipped, err := st.ReadDocuments()
	if err != nil {
		return nil, err
	}

	stats := rollup.BuildStats(journal.Aggregate(docs), time.Now())
	result := &statusResult{
		Dir:             st.Dir(),
		DirExists:       st.DirExists(),
		TotalEntries:    stats.TotalEntries,
		DaysLogged:      stats.DaysLogged,
		LatestEntry:     stats.LatestEntry,
		CurrentStreak:   stats.CurrentStreak,
		CurrentWeekWork: stats.CurrentWeekWork,
		TotalWork:       stats.TotalWork,
	}
	for _, skip := range skipped {
		result.SkippedFiles = append(result.SkippedFiles, skip.Name)
	}
	return result, nil
}

// printHumanStatus outputs statistics in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult) {
	printer.Section("Journal")
	printer.KeyValue("Directory", status.Dir)
	printer.KeyValue("Initialized", formatBool(status.DirExists))

	printer.Section("Entries")
	printer.KeyValue("Entries", strconv.Itoa(status.TotalEntries))
	printer.KeyValue("Days logged", strconv.Itoa(status.DaysLogged))
	latest := status.LatestEntry
	if latest == "" {
		latest = "none"
	}
	printer.KeyValue("Latest entry", latest)
	printer.KeyValue("Current streak", strconv.Itoa(status.CurrentStreak)+" days")

	printer.Section("Work Time")
	printer.KeyValue("This week", status.CurrentWeekWork)
	printer.KeyValue("Total", status.TotalWork)

	if len(status.SkippedFiles) > 0 {
		printer.Section("Warnings")
		for _, name := range status.SkippedFiles {
			printer.KeyValue("Skipped", name)
		}
	}
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
