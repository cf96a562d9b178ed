package rollup

import (
	"fmt"
	"time"

	"github.com/ledgewood/daybook/internal/journal"
)

// TotalWorkTime sums every parseable worked-hours value, formatted as
// "38h (5 days)". Keys that are not real dates still count. Zero
// contributing entries yields the "-" sentinel.
func TotalWorkTime(times map[string]string) string {
	total := 0.0
	days := 0
	for _, v := range times {
		hours, ok := journal.ParseWorkedHours(v)
		if !ok {
			continue
		}
		total += hours
		days++
	}
	if days == 0 {
		return "-"
	}
	return fmt.Sprintf("%s (%d days)", journal.FormatHours(total), days)
}

// CurrentWeekWorkTime restricts the sum to the Monday-to-Sunday week of
// today, formatted as "38h (5 days, 2025-07-07 to 2025-07-13)". Zero
// contributing entries yields the "-" sentinel.
func CurrentWeekWorkTime(times map[string]string, today time.Time) string {
	today = midnight(today)
	start := WeekStart(today)
	end := start.AddDate(0, 0, 6)

	total := 0.0
	days := 0
	for key, v := range times {
		date, ok := journal.ParseDateKey(key)
		if !ok || date.Before(start) || date.After(end) {
			continue
		}
		hours, ok := journal.ParseWorkedHours(v)
		if !ok {
			continue
		}
		total += hours
		days++
	}
	if days == 0 {
		return "-"
	}
	return fmt.Sprintf("%s (%d days, %s to %s)",
		journal.FormatHours(total), days,
		start.Format(journal.DateLayout), end.Format(journal.DateLayout))
}

// midnight truncates a timestamp to its UTC calendar date so it compares
// cleanly against parsed date keys.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
