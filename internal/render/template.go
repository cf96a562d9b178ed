// Package render formats aggregated journal data back into markdown:
// category tables, the dashboard README, and the daily entry scaffold.
package render

import (
	_ "embed"
	"strings"
)

//go:embed templates/daily.md
var dailyTemplate string

// DailyEntry returns the scaffold for one day's log: the time-tracking
// block and the four category headings.
func DailyEntry(date string) string {
	return strings.ReplaceAll(dailyTemplate, "{{date}}", date)
}
