// Package journal parses daily markdown logs into typed records and
// aggregates them across days.
package journal

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar form used for entry filenames and date keys.
const DateLayout = "2006-01-02"

// dateKeyRegex matches the first YYYY-MM-DD substring in a filename.
var dateKeyRegex = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Document is the raw text of one day's log.
type Document struct {
	Key  string // date key derived from the filename
	Path string // source path, used in warnings
	Text string
}

// DateKey derives a document's date key from its filename: the first
// YYYY-MM-DD substring, or the base name with the .md extension stripped.
// Other tooling relies on this exact contract.
func DateKey(path string) string {
	name := filepath.Base(path)
	if m := dateKeyRegex.FindString(name); m != "" {
		return m
	}
	return strings.TrimSuffix(name, ".md")
}

// ParseDateKey reports the calendar date for a key, or ok=false for
// fallback keys that are not real dates.
func ParseDateKey(key string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NewDocument builds a Document for the given source path and text.
func NewDocument(path, text string) Document {
	return Document{Key: DateKey(path), Path: path, Text: text}
}
