package rollup

import (
	"testing"
	"time"

	"github.com/ledgewood/daybook/internal/journal"
)

func TestBuildStats(t *testing.T) {
	agg := &journal.Aggregated{
		Rows: map[string][]journal.Row{
			"accomplished": {
				{Date: "2025-07-10", Text: "Shipped"},
				{Date: "2025-07-09", Text: "Prepped"},
			},
			"blockers": {{Date: "2025-07-09", Text: "CI"}},
			"learned":  nil,
			"improve":  nil,
		},
		Times: map[string]string{
			"2025-07-09": "7h",
			"2025-07-10": "3h",
		},
	}
	now := time.Date(2025, 7, 10, 18, 0, 0, 0, time.UTC)

	stats := BuildStats(agg, now)

	if stats.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", stats.TotalEntries)
	}
	if stats.DaysLogged != 2 {
		t.Errorf("DaysLogged = %d, want 2", stats.DaysLogged)
	}
	if stats.LatestEntry != "2025-07-10" {
		t.Errorf("LatestEntry = %q, want 2025-07-10", stats.LatestEntry)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", stats.CurrentStreak)
	}
	if stats.TotalWork != "10h (2 days)" {
		t.Errorf("TotalWork = %q, want %q", stats.TotalWork, "10h (2 days)")
	}
	if stats.CurrentWeekWork != "10h (2 days, 2025-07-07 to 2025-07-13)" {
		t.Errorf("CurrentWeekWork = %q, want the full current week", stats.CurrentWeekWork)
	}
}

func TestBuildStatsEmpty(t *testing.T) {
	agg := journal.Aggregate(nil)
	stats := BuildStats(agg, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))

	want := Stats{
		TotalEntries:    0,
		DaysLogged:      0,
		LatestEntry:     "",
		CurrentStreak:   0,
		CurrentWeekWork: "-",
		TotalWork:       "-",
	}
	if stats != want {
		t.Errorf("BuildStats(empty) = %+v, want %+v", stats, want)
	}
}
