// Package rollup derives streaks, weekly buckets, and work-time summaries
// from the aggregated date-to-hours mapping.
package rollup

import "time"

// CurrentStreak reports the length of the consecutive-day run ending at
// the most recent date. Dates must be unique and sorted descending;
// empty input reports 0.
func CurrentStreak(datesDesc []time.Time) int {
	if len(datesDesc) == 0 {
		return 0
	}
	streak := 1
	for i := 1; i < len(datesDesc); i++ {
		if !datesDesc[i].Equal(datesDesc[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}

// StreakGroups partitions descending dates into maximal runs of
// calendar-consecutive days. Group order and the order of dates within a
// group stay descending.
func StreakGroups(datesDesc []time.Time) [][]time.Time {
	var groups [][]time.Time
	var current []time.Time
	for i, d := range datesDesc {
		if i > 0 && !d.Equal(datesDesc[i-1].AddDate(0, 0, -1)) {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, d)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// GapDays counts the calendar days strictly between two dates. Adjacent
// days report 0.
func GapDays(later, earlier time.Time) int {
	return int(later.Sub(earlier)/(24*time.Hour)) - 1
}
