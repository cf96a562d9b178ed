package journal

import (
	"regexp"
	"strings"
)

// Item is one parsed line of a category body.
type Item struct {
	Text    string
	Comment string
}

var (
	bulletMarkerRegex = regexp.MustCompile(`^\s*[-*+]\s*`)
	numberMarkerRegex = regexp.MustCompile(`^\s*\d+\.\s*`)
	commentRegex      = regexp.MustCompile(`\[(.*?)\]`)
)

// ParseItems splits a category body into discrete items. Blank lines and
// heading lines are skipped, one leading list marker is stripped, and the
// first bracketed span becomes the item's comment, removed from the text.
// Lines that reduce to empty text are dropped.
func ParseItems(body string) []Item {
	var items []Item
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = bulletMarkerRegex.ReplaceAllString(line, "")
		line = numberMarkerRegex.ReplaceAllString(line, "")
		if line == "" {
			continue
		}

		text, comment := line, ""
		if m := commentRegex.FindStringSubmatch(line); m != nil {
			comment = m[1]
			text = strings.TrimSpace(strings.Replace(line, m[0], "", 1))
		}
		if text == "" {
			continue
		}
		items = append(items, Item{Text: text, Comment: comment})
	}
	return items
}
