package dispatch

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var (
	// ErrUnsupportedFeature is wrapped by UnsupportedFeatureError.
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrUnrecognizedCommand is wrapped by UnrecognizedCommandError.
	ErrUnrecognizedCommand = errors.New("unrecognized command")
)

// UnsupportedFeatureError is returned when the invocation asks for something
// Moka recognizes but does not implement, such as archive-backed modules.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	if e.Feature == FeatureArchive {
		return "Archive format is not currently implemented"
	}
	return fmt.Sprintf("%s is not currently implemented", e.Feature)
}

// Unwrap returns ErrUnsupportedFeature so callers can use errors.Is.
func (e *UnsupportedFeatureError) Unwrap() error { return ErrUnsupportedFeature }

// UnrecognizedCommandError is returned when no runner matches the command.
type UnrecognizedCommandError struct {
	Command Command
}

func (e *UnrecognizedCommandError) Error() string {
	if e.Command == CommandNone {
		return "no command given: expected use or compile"
	}
	return fmt.Sprintf("no such command %q: expected use or compile", string(e.Command))
}

// Unwrap returns ErrUnrecognizedCommand so callers can use errors.Is.
func (e *UnrecognizedCommandError) Unwrap() error { return ErrUnrecognizedCommand }

// ExitError signals a specific exit code without forcing os.Exit in handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Dispatch (or the CLI around it) to a
// process exit code. Nil is success, an *ExitError anywhere in the chain
// supplies its own code, and every other failure is 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
