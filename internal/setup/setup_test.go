package setup

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledgewood/daybook/internal/config"
	"github.com/ledgewood/daybook/internal/git"
)

// stepByName finds a step result by name.
func stepByName(t *testing.T, steps []StepResult, name string) StepResult {
	t.Helper()
	for _, s := range steps {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no step named %q in %v", name, steps)
	return StepResult{}
}

func TestRun_FreshJournal(t *testing.T) {
	t.Setenv("DAYBOOK_CONFIG_HOME", t.TempDir())
	dir := filepath.Join(t.TempDir(), "journal")

	steps := Run(Options{Dir: dir})

	if got := stepByName(t, steps, "layout"); got.Status != "ok" {
		t.Errorf("layout = %+v, want ok", got)
	}
	if got := stepByName(t, steps, "tables"); got.Status != "ok" || got.Message != "4 tables written" {
		t.Errorf("tables = %+v, want ok with 4 tables", got)
	}
	if got := stepByName(t, steps, "config"); got.Status != "ok" {
		t.Errorf("config = %+v, want ok", got)
	}
	for _, name := range []string{"git", "remote", "commit"} {
		if got := stepByName(t, steps, name); got.Status != "skipped" {
			t.Errorf("%s = %+v, want skipped without git", name, got)
		}
	}
	if Failed(steps) {
		t.Errorf("Failed() = true, steps: %v", steps)
	}

	data, err := os.ReadFile(filepath.Join(dir, "aggregated", "accomplished.md"))
	if err != nil {
		t.Fatalf("reading seeded table: %v", err)
	}
	if !strings.HasPrefix(string(data), "# What I accomplished\n") {
		t.Errorf("seeded table starts with %q", strings.SplitN(string(data), "\n", 2)[0])
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	wantDir, _ := filepath.Abs(dir)
	if cfg.JournalDir != wantDir {
		t.Errorf("JournalDir = %q, want %q", cfg.JournalDir, wantDir)
	}
}

func TestRun_Idempotent(t *testing.T) {
	t.Setenv("DAYBOOK_CONFIG_HOME", t.TempDir())
	dir := filepath.Join(t.TempDir(), "journal")

	first := Run(Options{Dir: dir})
	if Failed(first) {
		t.Fatalf("first run failed: %v", first)
	}

	second := Run(Options{Dir: dir})
	if got := stepByName(t, second, "layout"); got.Status != "skipped" {
		t.Errorf("layout on rerun = %+v, want skipped", got)
	}
	if got := stepByName(t, second, "tables"); got.Status != "skipped" {
		t.Errorf("tables on rerun = %+v, want skipped", got)
	}
	if Failed(second) {
		t.Errorf("second run failed: %v", second)
	}
}

func TestRun_SeedPreservesExisting(t *testing.T) {
	t.Setenv("DAYBOOK_CONFIG_HOME", t.TempDir())
	dir := filepath.Join(t.TempDir(), "journal")

	tablePath := filepath.Join(dir, "aggregated", "accomplished.md")
	if err := os.MkdirAll(filepath.Dir(tablePath), 0o755); err != nil {
		t.Fatal(err)
	}
	sentinel := "# What I accomplished\n\nhand-edited\n"
	if err := os.WriteFile(tablePath, []byte(sentinel), 0o644); err != nil {
		t.Fatal(err)
	}

	steps := Run(Options{Dir: dir})
	if got := stepByName(t, steps, "tables"); got.Status != "ok" || got.Message != "3 tables written" {
		t.Errorf("tables = %+v, want ok with 3 tables", got)
	}

	data, err := os.ReadFile(tablePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sentinel {
		t.Error("existing aggregated table was overwritten")
	}
}

func TestRun_WithGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	t.Setenv("DAYBOOK_CONFIG_HOME", t.TempDir())
	// Isolate from host git config and provide a commit identity.
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)
	t.Setenv("GIT_AUTHOR_NAME", "daybook test")
	t.Setenv("GIT_AUTHOR_EMAIL", "daybook@example.invalid")
	t.Setenv("GIT_COMMITTER_NAME", "daybook test")
	t.Setenv("GIT_COMMITTER_EMAIL", "daybook@example.invalid")

	dir := filepath.Join(t.TempDir(), "journal")
	steps := Run(Options{
		Dir:       dir,
		InitGit:   true,
		RemoteURL: "https://example.invalid/journal.git",
	})

	if got := stepByName(t, steps, "git"); got.Status != "ok" {
		t.Errorf("git = %+v, want ok", got)
	}
	if got := stepByName(t, steps, "remote"); got.Status != "ok" {
		t.Errorf("remote = %+v, want ok", got)
	}
	if got := stepByName(t, steps, "commit"); got.Status != "ok" {
		t.Errorf("commit = %+v, want ok", got)
	}

	if !git.IsRepo(dir) {
		t.Error("journal dir is not a git repository after init")
	}
	if !git.HasRemote(dir) {
		t.Error("no remote configured after init")
	}

	// Re-running leaves git state alone.
	second := Run(Options{Dir: dir, InitGit: true, RemoteURL: "https://example.invalid/other.git"})
	if got := stepByName(t, second, "git"); got.Status != "skipped" {
		t.Errorf("git on rerun = %+v, want skipped", got)
	}
	if got := stepByName(t, second, "remote"); got.Status != "skipped" {
		t.Errorf("remote on rerun = %+v, want skipped", got)
	}
	if got := stepByName(t, second, "commit"); got.Status != "skipped" || got.Message != "nothing to commit" {
		t.Errorf("commit on rerun = %+v, want skipped with clean tree", got)
	}
}

func TestSucceeded(t *testing.T) {
	steps := []StepResult{
		{Name: "layout", Status: "ok"},
		{Name: "git", Status: "skipped"},
	}
	if !Succeeded(steps, "layout") {
		t.Error("Succeeded(layout) = false, want true")
	}
	if Succeeded(steps, "git") {
		t.Error("Succeeded(git) = true, want false")
	}
	if Succeeded(steps, "missing") {
		t.Error("Succeeded(missing) = true, want false")
	}
}
