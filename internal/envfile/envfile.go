// Package envfile loads environment variables from .env files so
// settings like DAYBOOK_DIR can live next to the journal instead of in
// shell profiles. Variables already set in the environment take
// precedence.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Load applies KEY=VALUE pairs from the file at path to the process
// environment. Keys that already carry a value keep it. A missing
// file is not an error; only read failures are reported.
func Load(path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}

	for _, line := range strings.Split(string(raw), "\n") {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
	return nil
}

// parseLine reads one KEY=VALUE pair. Blank lines, comments, and
// lines without "=" report ok=false. An "export " prefix and one
// matched pair of quotes around the value are tolerated.
func parseLine(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	rawKey, rawValue, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rawKey), "export "))
	if key == "" {
		return "", "", false
	}
	return key, unquote(strings.TrimSpace(rawValue)), true
}

// unquote strips one matched pair of surrounding single or double
// quotes. Mismatched quotes stay as written.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first != last || (first != '"' && first != '\'') {
		return value
	}
	return value[1 : len(value)-1]
}
