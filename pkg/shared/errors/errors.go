package errors

import "fmt"

const (
	// ExitCodeFailure is used for bad input, configuration or I/O errors.
	ExitCodeFailure = 1
	// ExitCodeThreshold is used when the report contains smells at or above --fail-on.
	ExitCodeThreshold = 2
)

// CommandError is an error returned by a command together with the exit code the process should use.
type CommandError struct {
	ExitCode int
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError wraps err with an exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode: code,
		Err:      err,
	}
}

// NewThresholdError reports that smells at or above the given priority were found.
func NewThresholdError(priority string, count int) *CommandError {
	return NewCommandError(fmt.Errorf("found %d code smell(s) at or above %q", count, priority), ExitCodeThreshold)
}
