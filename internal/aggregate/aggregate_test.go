package aggregate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ledgewood/daybook/internal/store"
)

func writeEntry(t *testing.T, dir, key, text string) {
	t.Helper()
	entriesDir := filepath.Join(dir, "entries")
	if err := os.MkdirAll(entriesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(entriesDir, key+".md"), []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func entryText(date, start, end string, accomplished ...string) string {
	var b strings.Builder
	b.WriteString("# 🗓️ " + date + "\n\n")
	b.WriteString("## ⏰ Time Tracking\n\n")
	b.WriteString("- **Start time**: " + start + "\n")
	b.WriteString("- **End time**: " + end + "\n")
	b.WriteString("- **Extra hours**: \n\n")
	b.WriteString("## ✅ What I accomplished\n\n")
	for _, item := range accomplished {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n## 🤔 What didn't go well / blockers\n\n## 📚 What I learned\n\n## 🚀 What to improve\n")
	return b.String()
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "2025-07-08", entryText("2025-07-08", "9:00 AM", "5:00 PM", "Built the store layer"))
	writeEntry(t, dir, "2025-07-09", entryText("2025-07-09", "10:00", "18:30", "Wired the charts", "Reviewed docs"))

	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	res, err := Run(store.New(dir), now)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Stats.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", res.Stats.TotalEntries)
	}
	if res.Stats.DaysLogged != 2 {
		t.Errorf("DaysLogged = %d, want 2", res.Stats.DaysLogged)
	}
	if res.Stats.LatestEntry != "2025-07-09" {
		t.Errorf("LatestEntry = %q, want 2025-07-09", res.Stats.LatestEntry)
	}
	if res.Stats.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", res.Stats.CurrentStreak)
	}
	if !res.ChartsWritten {
		t.Error("ChartsWritten = false, want true")
	}
	if len(res.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", res.Skipped)
	}

	table := readFile(t, filepath.Join(dir, "aggregated", "accomplished.md"))
	if !strings.HasPrefix(table, "# What I accomplished\n") {
		t.Errorf("accomplished table starts with %q", strings.SplitN(table, "\n", 2)[0])
	}
	if !strings.Contains(table, "Built the store layer") {
		t.Error("accomplished table missing item text")
	}

	readme := readFile(t, filepath.Join(dir, "README.md"))
	if !strings.Contains(readme, "- **Total entries**: 3") {
		t.Error("README missing total entries line")
	}
	if !strings.Contains(readme, "[2025-07-09](entries/2025-07-09.md)") {
		t.Error("README missing latest entry link")
	}
	// 9:00 AM to 5:00 PM is 7h after the lunch deduction.
	if !strings.Contains(readme, "| 7h |") {
		t.Error("README missing work time cell")
	}

	daily := readFile(t, filepath.Join(dir, "visualizations", "daily_hours.html"))
	if !strings.Contains(daily, "2025-07-08") {
		t.Error("daily chart missing date label")
	}
	weekly := readFile(t, filepath.Join(dir, "visualizations", "weekly_hours.html"))
	if !strings.Contains(weekly, "Week of 2025-07-07") {
		t.Error("weekly chart missing week label")
	}
}

func TestRun_NoWorkTime(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "2025-07-08", entryText("2025-07-08", "", "", "Only notes"))

	res, err := Run(store.New(dir), time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ChartsWritten {
		t.Error("ChartsWritten = true without parseable work time")
	}
	if _, err := os.Stat(filepath.Join(dir, "visualizations", "daily_hours.html")); !os.IsNotExist(err) {
		t.Error("daily chart written despite empty series")
	}
}

func TestRun_EmptyJournal(t *testing.T) {
	dir := t.TempDir()

	res, err := Run(store.New(dir), time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Stats.TotalEntries != 0 || res.Stats.DaysLogged != 0 {
		t.Errorf("stats = %+v, want zeros", res.Stats)
	}

	readme := readFile(t, filepath.Join(dir, "README.md"))
	if !strings.Contains(readme, "No entries yet") {
		t.Error("README missing empty-journal placeholder")
	}
	table := readFile(t, filepath.Join(dir, "aggregated", "learned.md"))
	if !strings.HasPrefix(table, "# What I learned\n") {
		t.Error("empty learned table not written")
	}
}

func TestRun_SkippedFiles(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "2025-07-08", entryText("2025-07-08", "9:00", "17:00", "Good entry"))
	writeEntry(t, dir, "2025-07-07", "# \xff\xfe broken")

	res, err := Run(store.New(dir), time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("Skipped = %v, want one entry", res.Skipped)
	}
	if res.Skipped[0].Name != "2025-07-07.md" {
		t.Errorf("Skipped name = %q", res.Skipped[0].Name)
	}
	if res.Stats.DaysLogged != 1 {
		t.Errorf("DaysLogged = %d, want 1", res.Stats.DaysLogged)
	}
}
