package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/ledgewood/daybook/internal/output"
)

// Run executes a git command inside dir.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func Run(dir string, args ...string) (string, error) {
	return RunContext(context.Background(), dir, args...)
}

// RunContext executes a git command inside dir with the given context.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunContext(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check if git is not found
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		// Git command failed - include stderr in message. Some
		// diagnostics (like "nothing to commit") land on stdout.
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo checks if dir is inside a git repository.
func IsRepo(dir string) bool {
	_, err := Run(dir, "rev-parse", "--git-dir")
	return err == nil
}

// Init initializes a new git repository in dir.
func Init(dir string) error {
	_, err := Run(dir, "init")
	return err
}

// Add stages all changes in dir.
func Add(dir string) error {
	_, err := Run(dir, "add", ".")
	return err
}

// Commit records staged changes with the given message.
// It returns false without error when there is nothing to commit.
func Commit(dir, message string) (bool, error) {
	_, err := Run(dir, "commit", "-m", message)
	if err != nil {
		if strings.Contains(err.Error(), "nothing to commit") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CurrentBranch returns the name of the branch checked out in dir.
func CurrentBranch(dir string) (string, error) {
	branch, err := Run(dir, "branch", "--show-current")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get current branch", err)
	}
	return branch, nil
}

// HasRemote reports whether dir has at least one configured remote.
func HasRemote(dir string) bool {
	out, err := Run(dir, "remote")
	if err != nil {
		return false
	}
	return out != ""
}

// AddRemote registers a remote under the given name.
func AddRemote(dir, name, url string) error {
	_, err := Run(dir, "remote", "add", name, url)
	return err
}

// Push publishes the current branch. A plain push is tried first; when
// it fails (typically because no upstream is set yet) the push is
// retried with --set-upstream origin <branch>.
func Push(dir string) error {
	_, err := Run(dir, "push")
	if err == nil {
		return nil
	}

	branch, branchErr := CurrentBranch(dir)
	if branchErr != nil || branch == "" {
		branch = "main"
	}
	if _, retryErr := Run(dir, "push", "--set-upstream", "origin", branch); retryErr != nil {
		return retryErr
	}
	return nil
}
