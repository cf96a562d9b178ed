package setup

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/ledgewood/daybook/internal/config"
	"github.com/ledgewood/daybook/internal/git"
	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/render"
	"github.com/ledgewood/daybook/internal/store"
)

// Options selects what daybook init should set up.
type Options struct {
	// Dir is the journal root to scaffold.
	Dir string
	// InitGit initializes a git repository in the journal root.
	InitGit bool
	// RemoteURL, when non-empty, is registered as the origin remote.
	RemoteURL string
}

// StepResult tracks the result of a single initialization step.
type StepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "skipped", "failed"
	Message string `json:"message,omitempty"`
}

// Run executes the setup steps in order. Every step reports a result;
// a failed step does not abort the ones after it. Re-running against an
// existing journal is safe: steps skip what is already in place.
func Run(opts Options) []StepResult {
	steps := make([]StepResult, 0, 6)
	steps = append(steps, performLayout(opts.Dir))
	steps = append(steps, performSeedTables(opts.Dir))
	steps = append(steps, performSaveConfig(opts.Dir))
	steps = append(steps, performGitInit(opts))
	steps = append(steps, performAddRemote(opts))
	steps = append(steps, performFirstCommit(opts))
	return steps
}

// Succeeded reports whether the named step completed with "ok" status.
func Succeeded(steps []StepResult, name string) bool {
	for _, s := range steps {
		if s.Name == name && s.Status == "ok" {
			return true
		}
	}
	return false
}

// Failed reports whether any step failed.
func Failed(steps []StepResult) bool {
	for _, s := range steps {
		if s.Status == "failed" {
			return true
		}
	}
	return false
}

// performLayout creates the journal directory tree.
func performLayout(dir string) StepResult {
	existed := dirExists(filepath.Join(dir, store.EntriesDir))

	if err := store.New(dir).EnsureLayout(); err != nil {
		return StepResult{Name: "layout", Status: "failed", Message: err.Error()}
	}
	if existed {
		return StepResult{Name: "layout", Status: "skipped", Message: "already exists"}
	}
	return StepResult{Name: "layout", Status: "ok", Message: "created " + dir}
}

// performSeedTables writes an empty aggregated table per category.
// Existing tables are never overwritten, so re-running init does not
// clobber aggregated data.
func performSeedTables(dir string) StepResult {
	st := store.New(dir)

	seeded := 0
	for _, cat := range journal.Categories {
		path := filepath.Join(dir, store.AggregatedDir, cat.Key+".md")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := st.WriteAggregated(cat.Key, render.CategoryTable(cat.Label, nil)); err != nil {
			return StepResult{Name: "tables", Status: "failed", Message: err.Error()}
		}
		seeded++
	}

	if seeded == 0 {
		return StepResult{Name: "tables", Status: "skipped", Message: "already seeded"}
	}
	return StepResult{Name: "tables", Status: "ok", Message: strconv.Itoa(seeded) + " tables written"}
}

// performSaveConfig persists the journal directory so later commands
// find it without --dir.
func performSaveConfig(dir string) StepResult {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	cfg := &config.Config{JournalDir: abs}
	if err := cfg.Save(); err != nil {
		return StepResult{Name: "config", Status: "failed", Message: err.Error()}
	}
	return StepResult{Name: "config", Status: "ok", Message: "journal_dir saved to " + config.Path()}
}

// performGitInit initializes a git repository in the journal root.
func performGitInit(opts Options) StepResult {
	if !opts.InitGit {
		return StepResult{Name: "git", Status: "skipped", Message: "not requested"}
	}
	if git.IsRepo(opts.Dir) {
		return StepResult{Name: "git", Status: "skipped", Message: "already a repository"}
	}
	if err := git.Init(opts.Dir); err != nil {
		return StepResult{Name: "git", Status: "failed", Message: err.Error()}
	}
	return StepResult{Name: "git", Status: "ok", Message: "repository initialized"}
}

// performAddRemote registers the origin remote when a URL was given.
func performAddRemote(opts Options) StepResult {
	if opts.RemoteURL == "" {
		return StepResult{Name: "remote", Status: "skipped", Message: "none provided"}
	}
	if !git.IsRepo(opts.Dir) {
		return StepResult{Name: "remote", Status: "skipped", Message: "no repository"}
	}
	if git.HasRemote(opts.Dir) {
		return StepResult{Name: "remote", Status: "skipped", Message: "already configured"}
	}
	if err := git.AddRemote(opts.Dir, "origin", opts.RemoteURL); err != nil {
		return StepResult{Name: "remote", Status: "failed", Message: err.Error()}
	}
	return StepResult{Name: "remote", Status: "ok", Message: "origin added: " + opts.RemoteURL}
}

// performFirstCommit records the scaffold in git so a fresh journal can
// be pushed right away.
func performFirstCommit(opts Options) StepResult {
	if !opts.InitGit {
		return StepResult{Name: "commit", Status: "skipped", Message: "not requested"}
	}
	if !git.IsRepo(opts.Dir) {
		return StepResult{Name: "commit", Status: "skipped", Message: "no repository"}
	}

	if err := git.Add(opts.Dir); err != nil {
		return StepResult{Name: "commit", Status: "failed", Message: err.Error()}
	}
	committed, err := git.Commit(opts.Dir, "Initialize journal")
	if err != nil {
		return StepResult{Name: "commit", Status: "failed", Message: err.Error()}
	}
	if !committed {
		return StepResult{Name: "commit", Status: "skipped", Message: "nothing to commit"}
	}
	return StepResult{Name: "commit", Status: "ok", Message: "initial commit created"}
}

// dirExists returns true if path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
