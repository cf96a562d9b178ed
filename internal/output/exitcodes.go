package output

import "errors"

// Exit codes returned by the daybook binary. Scripts branch on these,
// so the values are stable.
const (
	// ExitSuccess means the command completed.
	ExitSuccess = 0
	// ExitUserError means the user gave bad input: an unparseable
	// date, a journal that was never initialized, an unknown flag.
	ExitUserError = 1
	// ExitSystemError means the environment failed: unwritable
	// files, a git invocation that could not run.
	ExitSystemError = 2
	// ExitConflict means the requested change collides with existing
	// state and needs the user to decide.
	ExitConflict = 3
)

// ExitError carries an exit code alongside the message. Commands
// return it from RunE; Execute reads the code to pick the process
// exit status, and the JSON error payload includes it.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError flags bad input, such as an invalid date or a journal
// directory that was never set up.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewSystemError flags an environment failure with no underlying
// error worth keeping.
func NewSystemError(message string) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message}
}

// NewSystemErrorWithCause flags an environment failure and keeps the
// underlying error reachable through errors.Is.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// NewConflictError flags a collision with existing state.
func NewConflictError(message string) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message}
}

// GetExitCode maps an error to a process exit status. Nil is success,
// an ExitError anywhere in the chain supplies its code, and anything
// else counts as a user error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
