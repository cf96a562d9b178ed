package rollup

import (
	"time"

	"github.com/ledgewood/daybook/internal/journal"
)

// Stats are the headline numbers shown on the dashboard and by status.
type Stats struct {
	TotalEntries    int    `json:"total_entries"`
	DaysLogged      int    `json:"days_logged"`
	LatestEntry     string `json:"latest_entry,omitempty"`
	CurrentStreak   int    `json:"current_streak"`
	CurrentWeekWork string `json:"current_week_work_time"`
	TotalWork       string `json:"total_work_time"`
}

// BuildStats derives the headline numbers from an aggregation. LatestEntry
// is empty when no dated entries exist.
func BuildStats(agg *journal.Aggregated, now time.Time) Stats {
	dates := agg.EntryDates()
	stats := Stats{
		TotalEntries:    agg.TotalRows(),
		DaysLogged:      len(dates),
		CurrentStreak:   CurrentStreak(dates),
		CurrentWeekWork: CurrentWeekWorkTime(agg.Times, now),
		TotalWork:       TotalWorkTime(agg.Times),
	}
	if len(dates) > 0 {
		stats.LatestEntry = dates[0].Format(journal.DateLayout)
	}
	return stats
}
