package rollup

import (
	"sort"

	"github.com/ledgewood/daybook/internal/journal"
)

// Default chart windows.
const (
	DailyWindow  = 30
	WeeklyWindow = 12
)

// Point is one (label, hours) pair of a chart series.
type Point struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// DailySeries returns the most recent limit (date, hours) pairs with
// parseable values, ascending by date. An empty series is a valid
// no-chart result.
func DailySeries(times map[string]string, limit int) []Point {
	var points []Point
	for _, key := range sortedDateKeys(times) {
		if hours, ok := journal.ParseWorkedHours(times[key]); ok {
			points = append(points, Point{Label: key, Hours: hours})
		}
	}
	return tail(points, limit)
}

// WeeklySeries returns the most recent limit weekly buckets as
// (week-start, total-hours) pairs, ascending by week start.
func WeeklySeries(times map[string]string, limit int) []Point {
	buckets := WeeklyBuckets(times)

	weeks := make([]string, 0, len(buckets))
	for week := range buckets {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	points := make([]Point, 0, len(weeks))
	for _, week := range weeks {
		points = append(points, Point{Label: week, Hours: buckets[week].TotalHours})
	}
	return tail(points, limit)
}

// tail keeps the last n points of an ascending series.
func tail(points []Point, n int) []Point {
	if n > 0 && len(points) > n {
		return points[len(points)-n:]
	}
	return points
}
