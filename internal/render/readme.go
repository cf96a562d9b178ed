package render

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/rollup"
)

//go:embed templates/readme.md
var readmeTemplate string

// Dashboard renders the journal's top-level README: headline stats, links
// to the aggregated tables, and the reverse-chronological entry table with
// streak markers. now anchors the current-week window.
func Dashboard(agg *journal.Aggregated, now time.Time) string {
	stats := rollup.BuildStats(agg, now)

	latest := stats.LatestEntry
	if latest == "" {
		latest = "No entries yet"
	}

	vars := map[string]string{
		"total_entries":          strconv.Itoa(stats.TotalEntries),
		"days_logged":            strconv.Itoa(stats.DaysLogged),
		"latest_entry":           latest,
		"current_streak":         strconv.Itoa(stats.CurrentStreak),
		"current_week_work_time": stats.CurrentWeekWork,
		"total_work_time":        stats.TotalWork,
		"summary_links":          summaryLinks(),
		"latest_entries":         latestEntriesTable(agg.EntryDates(), agg.Times),
	}

	out := readmeTemplate
	for key, val := range vars {
		out = strings.ReplaceAll(out, "{{"+key+"}}", val)
	}
	return out
}

func summaryLinks() string {
	lines := make([]string, 0, len(journal.Categories))
	for _, cat := range journal.Categories {
		lines = append(lines, fmt.Sprintf("- [%s](aggregated/%s.md)", cat.Heading, cat.Key))
	}
	return strings.Join(lines, "\n")
}

// latestEntriesTable lays out the dated rows newest first. Rows within one
// streak group count down from the group length to 1, and a break row
// separates groups whenever at least one day was skipped. No dated rows
// yields an empty string so the README section collapses cleanly.
func latestEntriesTable(datesDesc []time.Time, times map[string]string) string {
	if len(datesDesc) == 0 {
		return ""
	}

	rows := []string{
		"| Date       | Entry | Work Time | Streak |",
		"|------------|-------|-----------|--------|",
	}
	groups := rollup.StreakGroups(datesDesc)
	for gi, group := range groups {
		for i, d := range group {
			key := d.Format(journal.DateLayout)
			work := times[key]
			if work == "" {
				work = "-"
			}
			rows = append(rows, fmt.Sprintf("| %s | [%s](entries/%s.md) | %s | 🔥 %d |",
				key, key, key, work, len(group)-i))
		}
		if gi == len(groups)-1 {
			continue
		}
		if gap := rollup.GapDays(group[len(group)-1], groups[gi+1][0]); gap > 0 {
			rows = append(rows, fmt.Sprintf("| | | | ⏸️ **Break: %d days** |", gap))
		}
	}
	return "\n" + strings.Join(rows, "\n") + "\n"
}
