package rollup

import (
	"sort"
	"time"

	"github.com/ledgewood/daybook/internal/journal"
)

// Day is one date's contribution to a weekly bucket.
type Day struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// Bucket accumulates the worked hours recorded within one week.
type Bucket struct {
	TotalHours float64 `json:"total_hours"`
	Days       []Day   `json:"days"` // ascending by date
}

// WeekStart returns the Monday on or before d.
func WeekStart(d time.Time) time.Time {
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDate(0, 0, -(weekday - 1))
}

// WeeklyBuckets groups every parseable worked-hours value under the
// Monday of its week. Keys that are not real dates and "-" sentinel
// values are skipped.
func WeeklyBuckets(times map[string]string) map[string]*Bucket {
	buckets := make(map[string]*Bucket)
	for _, key := range sortedDateKeys(times) {
		hours, ok := journal.ParseWorkedHours(times[key])
		if !ok {
			continue
		}
		date, _ := journal.ParseDateKey(key)
		week := WeekStart(date).Format(journal.DateLayout)

		bucket := buckets[week]
		if bucket == nil {
			bucket = &Bucket{}
			buckets[week] = bucket
		}
		bucket.TotalHours += hours
		bucket.Days = append(bucket.Days, Day{Date: key, Hours: hours})
	}
	return buckets
}

// sortedDateKeys returns the keys of times that parse as calendar dates,
// ascending.
func sortedDateKeys(times map[string]string) []string {
	keys := make([]string, 0, len(times))
	for key := range times {
		if _, ok := journal.ParseDateKey(key); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
