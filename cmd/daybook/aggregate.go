package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgewood/daybook/internal/aggregate"
	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/output"
)

// newAggregateCmd creates the aggregate command.
func newAggregateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate",
		Short: "Rebuild the aggregated tables, dashboard, and charts",
		Long: `Rebuild every generated file from the daily entries.

Reads all of entries/, then rewrites:
  - aggregated/<category>.md   one table per reflection category
  - README.md                  the dashboard with streaks and totals
  - visualizations/*.html      daily and weekly work-hour charts

Generated files are derived state: they are always rebuilt from
scratch, so hand edits to them do not survive.

Examples:
  daybook aggregate         # Refresh all generated files
  daybook aggregate --json  # Output the resulting stats as JSON`,
		RunE: runAggregate,
	}
}

// runAggregate executes the aggregate command.
func runAggregate(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	st, err := resolveStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	res, err := aggregate.Run(st, time.Now())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		data := map[string]any{
			"total_entries":          res.Stats.TotalEntries,
			"days_logged":            res.Stats.DaysLogged,
			"latest_entry":           res.Stats.LatestEntry,
			"current_streak":         res.Stats.CurrentStreak,
			"current_week_work_time": res.Stats.CurrentWeekWork,
			"total_work_time":        res.Stats.TotalWork,
			"charts_written":         res.ChartsWritten,
		}
		if len(res.Skipped) > 0 {
			names := make([]string, len(res.Skipped))
			for i, skip := range res.Skipped {
				names[i] = skip.Name
			}
			data["skipped_files"] = names
		}
		return printer.Success(data)
	}

	for _, skip := range res.Skipped {
		printer.Warn("skipping %s: %s", skip.Name, skip.Reason)
	}

	printer.Println("Journal refreshed:", st.Dir())

	printer.Section("Dashboard")
	printer.KeyValue("Entries", strconv.Itoa(res.Stats.TotalEntries))
	printer.KeyValue("Days logged", strconv.Itoa(res.Stats.DaysLogged))
	if res.Stats.LatestEntry != "" {
		printer.KeyValue("Latest entry", res.Stats.LatestEntry)
	}
	printer.KeyValue("Current streak", strconv.Itoa(res.Stats.CurrentStreak)+" days")
	printer.KeyValue("This week", res.Stats.CurrentWeekWork)
	printer.KeyValue("Total work time", res.Stats.TotalWork)

	printer.Section("Tables")
	rows := make([][]string, 0, len(journal.Categories))
	for _, cat := range journal.Categories {
		rows = append(rows, []string{cat.Label, strconv.Itoa(len(res.Agg.Rows[cat.Key]))})
	}
	printer.Table([]string{"Category", "Rows"}, rows)

	if !res.ChartsWritten {
		printer.Println()
		printer.Println("No parseable work times yet; charts not written.")
	}
	return nil
}
