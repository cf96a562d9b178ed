// Package aggregate orchestrates the full journal refresh: read every
// daily entry, merge the categories, and write the aggregated tables,
// dashboard README, and chart pages back to the journal directory.
package aggregate

import (
	"time"

	"github.com/ledgewood/daybook/internal/charts"
	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/render"
	"github.com/ledgewood/daybook/internal/rollup"
	"github.com/ledgewood/daybook/internal/store"
)

// Result reports what an aggregation pass produced.
type Result struct {
	Agg           *journal.Aggregated
	Stats         rollup.Stats
	Skipped       []store.Skipped
	ChartsWritten bool
}

// Run reads all entries and rewrites every derived view. Unreadable
// entry files are reported in Result.Skipped, never fatal. Chart pages
// are only written when at least one day has parseable work time.
func Run(st *store.Store, now time.Time) (*Result, error) {
	docs, skipped, err := st.ReadDocuments()
	if err != nil {
		return nil, err
	}
	agg := journal.Aggregate(docs)

	for _, cat := range journal.Categories {
		table := render.CategoryTable(cat.Label, agg.Rows[cat.Key])
		if err := st.WriteAggregated(cat.Key, table); err != nil {
			return nil, err
		}
	}

	if err := st.WriteReadme(render.Dashboard(agg, now)); err != nil {
		return nil, err
	}

	chartsWritten, err := writeCharts(st, agg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Agg:           agg,
		Stats:         rollup.BuildStats(agg, now),
		Skipped:       skipped,
		ChartsWritten: chartsWritten,
	}, nil
}

// writeCharts renders the two HTML chart pages from the work-time
// series. With no data there is nothing worth plotting.
func writeCharts(st *store.Store, agg *journal.Aggregated) (bool, error) {
	daily := rollup.DailySeries(agg.Times, rollup.DailyWindow)
	if len(daily) == 0 {
		return false, nil
	}

	dailyHTML, err := charts.DailyHTML(daily)
	if err != nil {
		return false, err
	}
	if err := st.WriteVisualization("daily_hours.html", dailyHTML); err != nil {
		return false, err
	}

	weeklyHTML, err := charts.WeeklyHTML(rollup.WeeklySeries(agg.Times, rollup.WeeklyWindow))
	if err != nil {
		return false, err
	}
	if err := st.WriteVisualization("weekly_hours.html", weeklyHTML); err != nil {
		return false, err
	}
	return true, nil
}
