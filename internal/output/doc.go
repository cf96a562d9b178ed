// Package output is the single exit path for everything daybook
// commands print. One Printer per invocation decides between styled
// human text and machine-readable JSON, and the ExitError family maps
// failures onto stable process exit codes.
//
// # Two output modes
//
// Every command accepts --json. Human mode is for a person at a
// terminal; JSON mode is for scripts, cron jobs, and agents driving
// the CLI. A command never checks the flag itself. It builds a Printer
// once and lets the mode live there:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"date": key, "created": true, "path": path})
//
// In JSON mode that emits the map as an indented object. In human mode
// a "message" key prints directly and other maps degrade to key: value
// lines; commands that care about human layout use Section, KeyValue,
// Table, and Box instead of Success.
//
// # Errors and warnings
//
// Error and Warn keep the streams separable. Human mode sends both to
// the error writer (set via WithStderr) so entry text and dashboards
// can be piped cleanly. JSON mode keeps them on the main writer, as
// {"error": ..., "code": N} and {"warning": ...}, so a JSON consumer
// reads one stream and never needs stderr.
//
// # Exit codes
//
// The binary exits 0 on success, 1 for user mistakes, 2 for system
// failures, and 3 for state conflicts. RunE functions return errors
// from NewUserError, NewSystemError, NewSystemErrorWithCause, or
// NewConflictError; main resolves the code with GetExitCode. An error
// without a code is assumed to be the user's.
//
// # Color
//
// Styling runs through lipgloss and is decided once, up front:
// ResolveColorMode honors the color config setting and NO_COLOR, and
// IsTTY detects terminals. Non-TTY printers carry zero-value styles,
// so piped output never contains escape codes.
package output
