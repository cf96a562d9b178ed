// Package store manages the on-disk journal layout. A journal directory
// holds daily entries under entries/, the cross-day tables under
// aggregated/, chart pages under visualizations/, and the dashboard
// README at the root.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/output"
)

// Journal layout relative to the journal directory.
const (
	EntriesDir        = "entries"
	AggregatedDir     = "aggregated"
	VisualizationsDir = "visualizations"
	ReadmeName        = "README.md"
)

// Store reads and writes one journal directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the journal directory path.
func (s *Store) Dir() string {
	return s.dir
}

// DirExists returns true if the journal directory exists.
func (s *Store) DirExists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// EnsureLayout creates the journal subdirectories. Existing directories
// are left untouched.
func (s *Store) EnsureLayout() error {
	for _, sub := range []string{EntriesDir, AggregatedDir, VisualizationsDir} {
		if err := os.MkdirAll(filepath.Join(s.dir, sub), 0o755); err != nil {
			return output.NewSystemErrorWithCause("failed to create journal directory "+sub, err)
		}
	}
	return nil
}

// EntryPath returns the file path for a daily entry key.
func (s *Store) EntryPath(key string) string {
	return filepath.Join(s.dir, EntriesDir, key+".md")
}

// EntryExists returns true if an entry file exists for the given key.
func (s *Store) EntryExists(key string) bool {
	_, err := os.Stat(s.EntryPath(key))
	return err == nil
}

// ReadEntry reads one daily entry by key.
// Returns a user error if the entry file does not exist.
func (s *Store) ReadEntry(key string) (journal.Document, error) {
	path := s.EntryPath(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return journal.Document{}, output.NewUserError("entry not found: " + key)
		}
		return journal.Document{}, output.NewSystemErrorWithCause("failed to read entry file: "+path, err)
	}
	if !utf8.Valid(data) {
		return journal.Document{}, output.NewUserError("entry is not valid UTF-8: " + key)
	}
	return journal.NewDocument(path, string(data)), nil
}

// WriteEntry writes a daily entry. Uses write-to-temp-then-rename for
// atomicity. If force is false and the entry file already exists,
// returns a conflict error.
func (s *Store) WriteEntry(key, text string, force bool) error {
	path := s.EntryPath(key)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return output.NewConflictError("entry already exists: " + key)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create entries directory", err)
	}
	if err := atomicWrite(path, []byte(text)); err != nil {
		return output.NewSystemErrorWithCause("failed to write entry", err)
	}
	return nil
}

// Skipped describes one entries file that was left out of a read pass.
type Skipped struct {
	Name   string
	Reason string
}

// ReadDocuments reads every daily entry in ascending filename order.
// Only .md files are considered; dotfiles and subdirectories are
// ignored. Unreadable or non-UTF-8 files are reported in skipped, never
// fatal. A missing entries directory yields empty results.
func (s *Store) ReadDocuments() ([]journal.Document, []Skipped, error) {
	dir := filepath.Join(s.dir, EntriesDir)
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, output.NewSystemErrorWithCause("failed to read entries directory", err)
	}

	var docs []journal.Document
	var skipped []Skipped
	for _, entry := range dirEntries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".md") {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, Skipped{Name: name, Reason: fmt.Sprintf("unreadable: %v", err)})
			continue
		}
		if !utf8.Valid(data) {
			skipped = append(skipped, Skipped{Name: name, Reason: "not valid UTF-8"})
			continue
		}
		docs = append(docs, journal.NewDocument(path, string(data)))
	}
	return docs, skipped, nil
}

// WriteAggregated writes one category table under aggregated/.
func (s *Store) WriteAggregated(name, text string) error {
	return s.writeUnder(AggregatedDir, name+".md", text)
}

// WriteVisualization writes one chart page under visualizations/.
func (s *Store) WriteVisualization(name, text string) error {
	return s.writeUnder(VisualizationsDir, name, text)
}

// WriteReadme writes the dashboard README at the journal root.
func (s *Store) WriteReadme(text string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create journal directory", err)
	}
	if err := atomicWrite(filepath.Join(s.dir, ReadmeName), []byte(text)); err != nil {
		return output.NewSystemErrorWithCause("failed to write README", err)
	}
	return nil
}

func (s *Store) writeUnder(sub, name, text string) error {
	dir := filepath.Join(s.dir, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create journal directory "+sub, err)
	}
	if err := atomicWrite(filepath.Join(dir, name), []byte(text)); err != nil {
		return output.NewSystemErrorWithCause("failed to write "+filepath.Join(sub, name), err)
	}
	return nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
