package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledgewood/daybook/internal/output"
)

func writeRawEntry(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	entriesDir := filepath.Join(dir, EntriesDir)
	if err := os.MkdirAll(entriesDir, 0o755); err != nil {
		t.Fatalf("failed to create entries dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(entriesDir, name), content, 0o600); err != nil {
		t.Fatalf("failed to write test file %s: %v", name, err)
	}
}

func TestStore_WriteEntryAndReadEntry(t *testing.T) {
	s := New(t.TempDir())

	if err := s.WriteEntry("2025-07-08", "# 🗓️ 2025-07-08\n", false); err != nil {
		t.Fatalf("WriteEntry() error = %v", err)
	}
	if !s.EntryExists("2025-07-08") {
		t.Error("EntryExists() = false after write")
	}

	doc, err := s.ReadEntry("2025-07-08")
	if err != nil {
		t.Fatalf("ReadEntry() error = %v", err)
	}
	if doc.Key != "2025-07-08" {
		t.Errorf("doc.Key = %q, want %q", doc.Key, "2025-07-08")
	}
	if doc.Text != "# 🗓️ 2025-07-08\n" {
		t.Errorf("doc.Text = %q, want the written content", doc.Text)
	}
}

func TestStore_WriteEntryConflict(t *testing.T) {
	s := New(t.TempDir())

	if err := s.WriteEntry("2025-07-08", "first", false); err != nil {
		t.Fatalf("WriteEntry() error = %v", err)
	}

	err := s.WriteEntry("2025-07-08", "second", false)
	if err == nil {
		t.Fatal("WriteEntry() should refuse to overwrite without force")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %q, want mention of existing entry", err)
	}
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", code, output.ExitConflict)
	}

	if err := s.WriteEntry("2025-07-08", "second", true); err != nil {
		t.Fatalf("WriteEntry(force) error = %v", err)
	}
	doc, err := s.ReadEntry("2025-07-08")
	if err != nil {
		t.Fatalf("ReadEntry() error = %v", err)
	}
	if doc.Text != "second" {
		t.Errorf("doc.Text = %q, want %q after forced overwrite", doc.Text, "second")
	}
}

func TestStore_ReadEntryMissing(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.ReadEntry("2025-07-08")
	if err == nil {
		t.Fatal("ReadEntry() should fail for a missing entry")
	}
	if !strings.Contains(err.Error(), "entry not found") {
		t.Errorf("error = %q, want not-found message", err)
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestStore_ReadDocumentsOrder(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	writeRawEntry(t, dir, "2025-07-10.md", []byte("c"))
	writeRawEntry(t, dir, "2025-07-08.md", []byte("a"))
	writeRawEntry(t, dir, "2025-07-09.md", []byte("b"))

	docs, skipped, err := s.ReadDocuments()
	if err != nil {
		t.Fatalf("ReadDocuments() error = %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}

	var keys []string
	for _, doc := range docs {
		keys = append(keys, doc.Key)
	}
	want := []string{"2025-07-08", "2025-07-09", "2025-07-10"}
	if len(keys) != len(want) {
		t.Fatalf("ReadDocuments() returned %d docs, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("docs[%d].Key = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestStore_ReadDocumentsSkips(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	writeRawEntry(t, dir, "2025-07-08.md", []byte("fine"))
	writeRawEntry(t, dir, "2025-07-09.md", []byte("bad \xff\xfe bytes"))
	writeRawEntry(t, dir, "notes.txt", []byte("not markdown"))
	writeRawEntry(t, dir, ".hidden.md", []byte("dotfile"))
	if err := os.MkdirAll(filepath.Join(dir, EntriesDir, "sub.md"), 0o755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	docs, skipped, err := s.ReadDocuments()
	if err != nil {
		t.Fatalf("ReadDocuments() error = %v", err)
	}

	if len(docs) != 1 || docs[0].Key != "2025-07-08" {
		t.Errorf("docs = %v, want only 2025-07-08", docs)
	}
	if len(skipped) != 1 {
		t.Fatalf("skipped = %v, want exactly the non-UTF-8 file", skipped)
	}
	if skipped[0].Name != "2025-07-09.md" || !strings.Contains(skipped[0].Reason, "UTF-8") {
		t.Errorf("skipped[0] = %+v, want 2025-07-09.md with UTF-8 reason", skipped[0])
	}
}

func TestStore_ReadDocumentsMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))

	docs, skipped, err := s.ReadDocuments()
	if err != nil {
		t.Fatalf("ReadDocuments() error = %v", err)
	}
	if len(docs) != 0 || len(skipped) != 0 {
		t.Errorf("ReadDocuments() = %v, %v; want empty results", docs, skipped)
	}
}

func TestStore_EnsureLayout(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := s.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout() error = %v", err)
	}
	for _, sub := range []string{EntriesDir, AggregatedDir, VisualizationsDir} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil || !info.IsDir() {
			t.Errorf("EnsureLayout() did not create %s", sub)
		}
	}

	// Idempotent on an existing layout.
	if err := s.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout() second run error = %v", err)
	}
}

func TestStore_WriteOutputs(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := s.WriteAggregated("accomplished", "# What I accomplished\n"); err != nil {
		t.Fatalf("WriteAggregated() error = %v", err)
	}
	if err := s.WriteVisualization("daily_hours.html", "<html></html>"); err != nil {
		t.Fatalf("WriteVisualization() error = %v", err)
	}
	if err := s.WriteReadme("# 📝 Journal\n"); err != nil {
		t.Fatalf("WriteReadme() error = %v", err)
	}

	for _, rel := range []string{
		filepath.Join(AggregatedDir, "accomplished.md"),
		filepath.Join(VisualizationsDir, "daily_hours.html"),
		ReadmeName,
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("missing output file %s: %v", rel, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, ReadmeName))
	if err != nil {
		t.Fatalf("reading README: %v", err)
	}
	if string(data) != "# 📝 Journal\n" {
		t.Errorf("README content = %q, want %q", string(data), "# 📝 Journal\n")
	}
}
