package model

import (
	"fmt"
)

// ExitCode is the process exit code reported by mycli.
//
// Only two codes are owned by mycli itself. Every other value is relayed
// unchanged from the delegated child process.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError covers every failure mycli reports on its own:
	// unknown subcommand, missing executable, spawn failure, bad config,
	// help shown because no subcommand was given, and child processes
	// killed by a signal.
	ExitGeneralError ExitCode = 1
)

// Outcome is how a delegated child process terminated.
type Outcome struct {
	// Code is the child's numeric exit status. Meaningless when Signaled.
	Code int

	// Signaled is true when the child was terminated by a signal and no
	// exit status is available.
	Signaled bool
}

// ExitCode maps the outcome onto the code mycli should exit with.
// A signal termination collapses to ExitGeneralError.
func (o Outcome) ExitCode() ExitCode {
	if o.Signaled {
		return ExitGeneralError
	}
	return ExitCode(o.Code)
}

// String returns a short description for verbose logging.
func (o Outcome) String() string {
	if o.Signaled {
		return "terminated by signal"
	}
	return fmt.Sprintf("exit status %d", o.Code)
}

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Hint is an optional second line telling the user how to fix the
	// problem. It is printed on its own line below the message.
	Hint string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// WithHint sets the hint line and returns the same error for chaining.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// ExitStatus is a terminal exit code whose output has already reached the
// user, either from the child process or from mycli's own help text.
// The CLI layer exits with Code and prints nothing further.
type ExitStatus struct {
	Code ExitCode
}

// Error satisfies the error interface so ExitStatus can travel through
// cobra's RunE return path.
func (e *ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e.Code))
}
