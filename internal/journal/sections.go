package journal

import (
	"regexp"
	"slices"
	"strings"
)

// Category is one of the four fixed reflection topics of a daily log.
type Category struct {
	Key     string // file stem of the aggregated table (accomplished.md, ...)
	Label   string // heading label matched in entries, case-insensitive
	Heading string // emoji-decorated heading text written by the template
}

// Categories lists the four topics in daily-template order.
var Categories = []Category{
	{Key: "accomplished", Label: "What I accomplished", Heading: "✅ What I accomplished"},
	{Key: "blockers", Label: "What didn't go well / blockers", Heading: "🤔 What didn't go well / blockers"},
	{Key: "learned", Label: "What I learned", Heading: "📚 What I learned"},
	{Key: "improve", Label: "What to improve", Heading: "🚀 What to improve"},
}

// CategoryByKey looks up a category by its key.
func CategoryByKey(key string) (Category, bool) {
	for _, cat := range Categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// timeTrackingLabel is the heading label of the time-tracking block.
const timeTrackingLabel = "Time Tracking"

// TimeRecord holds the verbatim values of the three labeled lines inside
// a time-tracking block. An empty field is absent, a valid state.
type TimeRecord struct {
	Start string
	End   string
	Extra string
}

// Time-field regexes are line-scoped: the value runs to the end of the
// labeled line. Up to two trailing asterisks after the label tolerate
// the template's bold markers.
var (
	startTimeRegex  = regexp.MustCompile(`(?i)Start time\*{0,2}:[ \t]*([^\n\r]*)`)
	endTimeRegex    = regexp.MustCompile(`(?i)End time\*{0,2}:[ \t]*([^\n\r]*)`)
	extraHoursRegex = regexp.MustCompile(`(?i)Extra hours\*{0,2}:[ \t]*([^\n\r]*)`)
)

// ExtractSections returns each category's body text keyed by category
// key. A body spans from just after the category heading to the nearest
// later heading of another category, or the end of the document. Missing
// headings yield empty bodies, and heading order does not matter.
func ExtractSections(text string) map[string]string {
	lines := strings.Split(text, "\n")

	// hits[i] holds the category indexes whose label appears on heading line i.
	hits := make(map[int][]int)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		lower := strings.ToLower(trimmed)
		for c := range Categories {
			if strings.Contains(lower, strings.ToLower(Categories[c].Label)) {
				hits[i] = append(hits[i], c)
			}
		}
	}

	bodies := make(map[string]string, len(Categories))
	for c := range Categories {
		bodies[Categories[c].Key] = ""

		start := -1
		for i := range lines {
			if slices.Contains(hits[i], c) {
				start = i
				break
			}
		}
		if start == -1 {
			continue
		}

		end := len(lines)
		for i := start + 1; i < end; i++ {
			if otherCategory(hits[i], c) {
				end = i
				break
			}
		}

		bodies[Categories[c].Key] = strings.TrimSpace(strings.Join(lines[start+1:end], "\n"))
	}
	return bodies
}

// ExtractTimeRecord locates the time-tracking block and pulls the three
// labeled field values out of it. The block runs from after its heading
// to the next "##" heading line or the end of the document.
func ExtractTimeRecord(text string) TimeRecord {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.Contains(strings.ToLower(trimmed), strings.ToLower(timeTrackingLabel)) {
			start = i
			break
		}
	}
	if start == -1 {
		return TimeRecord{}
	}

	end := len(lines)
	for i := start + 1; i < end; i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "##") {
			end = i
			break
		}
	}
	body := strings.Join(lines[start+1:end], "\n")

	return TimeRecord{
		Start: timeField(startTimeRegex, body),
		End:   timeField(endTimeRegex, body),
		Extra: timeField(extraHoursRegex, body),
	}
}

// timeField returns the trimmed first capture of re in body, or "".
func timeField(re *regexp.Regexp, body string) string {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// otherCategory reports whether the line's heading hits include a
// category other than c.
func otherCategory(cats []int, c int) bool {
	for _, x := range cats {
		if x != c {
			return true
		}
	}
	return false
}
