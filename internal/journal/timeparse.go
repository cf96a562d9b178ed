package journal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clockLayouts are the accepted time-of-day forms, tried in order.
// "15" accepts one- or two-digit hours, so bare "9" parses; the dot in
// "15.04" is literal.
var clockLayouts = []string{
	"15:04",   // 09:00, 17:30
	"3:04 PM", // 9:00 AM, 5:30 PM
	"3:04PM",  // 9:00AM, 5:30PM
	"15.04",   // 09.00, 17.30
	"15",      // 9, 17
	"3 PM",    // 9 AM, 5 PM
}

// hoursRegex matches a leading decimal with an optional trailing h,
// as in "2h", "1.5" or "0.5h".
var hoursRegex = regexp.MustCompile(`^(\d+(?:\.\d+)?)h?`)

// ParseClock parses a free-text time-of-day string. Unparseable input
// reports ok=false rather than an error.
func ParseClock(raw string) (time.Time, bool) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ComputeWorkedHours derives the worked-hours string for one day from the
// raw start, end, and extra-hours field values.
//
// The end time is treated as next-day when it precedes the start
// (overnight shifts), one hour is deducted from the span (floored at
// zero), and a leading decimal in extra is added on top. Missing or
// unparseable start/end yields the "-" sentinel.
func ComputeWorkedHours(start, end, extra string) string {
	if start == "" || end == "" {
		return "-"
	}

	startAt, ok := ParseClock(start)
	if !ok {
		return "-"
	}
	endAt, ok := ParseClock(end)
	if !ok {
		return "-"
	}

	minutes := clockMinutes(endAt) - clockMinutes(startAt)
	if minutes < 0 {
		minutes += 24 * 60
	}

	worked := float64(minutes)/60 - 1
	if worked < 0 {
		worked = 0
	}

	if extraHours, ok := ParseWorkedHours(strings.TrimSpace(extra)); ok {
		worked += extraHours
	}

	return FormatHours(worked)
}

// ParseWorkedHours extracts the numeric hours from a worked-hours string
// such as "8h" or "7.5h". The "-" sentinel and junk report ok=false.
func ParseWorkedHours(s string) (float64, bool) {
	m := hoursRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return hours, true
}

// FormatHours renders hours as "8h" when integral and "7.5h" otherwise.
func FormatHours(hours float64) string {
	if hours == float64(int64(hours)) {
		return fmt.Sprintf("%dh", int64(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}

// clockMinutes reduces a parsed clock value to minutes since midnight.
func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
