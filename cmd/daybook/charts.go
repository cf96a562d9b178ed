package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgewood/daybook/internal/charts"
	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/output"
	"github.com/ledgewood/daybook/internal/rollup"
)

// chartsWidth caps the rendered width of both charts.
const chartsWidth = 72

// chartsFlags holds the command-line flags for the charts command.
type chartsFlags struct {
	days  int
	weeks int
}

// newChartsCmd creates the charts command.
func newChartsCmd() *cobra.Command {
	flags := &chartsFlags{}
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Preview work-hour charts in the terminal",
		Long: `Preview the daily and weekly work-hour series in the terminal.

The daily chart is a braille line chart of hours per day; the weekly
chart is one bar per Monday-to-Sunday week. The same series feed the
HTML pages that aggregate writes to visualizations/.

Examples:
  daybook charts             # Last 30 days and 12 weeks
  daybook charts --days 7    # Trim the daily window
  daybook charts --weeks 4   # Trim the weekly window`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCharts(cmd, flags)
		},
	}
	cmd.Flags().IntVar(&flags.days, "days", rollup.DailyWindow, "Days in the daily chart window")
	cmd.Flags().IntVar(&flags.weeks, "weeks", rollup.WeeklyWindow, "Weeks in the weekly chart window")
	return cmd
}

// runCharts executes the charts command.
func runCharts(cmd *cobra.Command, flags *chartsFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	if flags.days < 1 || flags.weeks < 1 {
		err := output.NewUserError("--days and --weeks must be at least 1")
		printer.Error(err)
		return err
	}

	st, err := resolveStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	docs, skipped, err := st.ReadDocuments()
	if err != nil {
		printer.Error(err)
		return err
	}
	for _, skip := range skipped {
		printer.Warn("skipping %s: %s", skip.Name, skip.Reason)
	}

	agg := journal.Aggregate(docs)
	daily := rollup.DailySeries(agg.Times, flags.days)
	weekly := rollup.WeeklySeries(agg.Times, flags.weeks)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"daily":  daily,
			"weekly": weekly,
		})
	}

	if len(daily) == 0 {
		printer.Println("No work time data yet. Fill in the time-tracking block of an entry first.")
		return nil
	}

	printer.Box(fmt.Sprintf("Daily Hours (last %d days)", flags.days),
		charts.DailyTerminal(daily, chartsWidth, charts.DefaultTerminalHeight))
	printer.Box(fmt.Sprintf("Weekly Hours (last %d weeks)", flags.weeks),
		charts.WeeklyTerminal(weekly, chartsWidth))
	return nil
}
