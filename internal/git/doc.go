// Package git shells out to the git binary for the operations
// publishing needs. The journal is a plain repository and the user's
// own git does the work, so credentials, hooks, and config behave
// exactly as they do at the command line.
//
// Every function takes the repository directory explicitly; daybook
// commands usually run outside the journal.
//
// The publish flow behind daybook push:
//
//	if err := git.Add(dir); err != nil { ... }
//	committed, err := git.Commit(dir, "Update journal logs on 2025-07-10")
//	if err := git.Push(dir); err != nil { ... }
//
// Commit reports false instead of failing when the tree is clean, and
// Push retries with --set-upstream origin <branch> so the first push
// of a fresh repository needs no manual setup.
//
// Failures come back as *output.ExitError with the system error code
// and git's own stderr in the message. Run and RunContext are the
// escape hatch for anything not wrapped:
//
//	out, err := git.Run(dir, "status", "--porcelain")
package git
