package main

// Exit codes following the square/exit convention.
const (
	exitError      = 1  // generic error
	exitUsageError = 80 // invalid input, rejected query or flags
)

// cliError wraps err with the exit code kong should use for it.
type cliError struct {
	err  error
	code int
}

func usageError(err error) *cliError {
	return &cliError{err: err, code: exitUsageError}
}

func (e *cliError) Error() string { return e.err.Error() }

func (e *cliError) Unwrap() error { return e.err }

// ExitCode satisfies kong.ExitCoder.
func (e *cliError) ExitCode() int {
	if e.code == 0 {
		return exitError
	}
	return e.code
}
