package bridge

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrBridgeSpawn is wrapped by SpawnError.
	ErrBridgeSpawn = errors.New("interpreter bridge failed to start")

	// ErrBridgeIO is wrapped by IOError.
	ErrBridgeIO = errors.New("interpreter bridge stream capture failed")

	// ErrBridgeTimeout is wrapped by TimeoutError.
	ErrBridgeTimeout = errors.New("interpreter bridge timed out")

	// ErrDelegatedFailure is wrapped by DelegatedFailure.
	ErrDelegatedFailure = errors.New("delegated program failed")
)

// SpawnError reports that the interpreter process never started: the
// interpreter or script is missing, unreadable, or exec itself failed.
type SpawnError struct {
	Interpreter string
	Script      string
	Err         error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %s %s: %v", e.Interpreter, e.Script, e.Err)
}

// Unwrap returns both the cause and ErrBridgeSpawn.
func (e *SpawnError) Unwrap() []error { return []error{ErrBridgeSpawn, e.Err} }

// IOError reports that the process started but its output could not be
// captured in full.
type IOError struct {
	Script string
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("capturing output of %s: %v", e.Script, e.Err)
}

// Unwrap returns both the cause and ErrBridgeIO.
func (e *IOError) Unwrap() []error { return []error{ErrBridgeIO, e.Err} }

// TimeoutError reports that the process was killed because the context was
// cancelled or the wait bound elapsed.
type TimeoutError struct {
	Script  string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("%s did not finish within %s: %v", e.Script, e.Timeout, e.Err)
	}
	return fmt.Sprintf("%s was interrupted: %v", e.Script, e.Err)
}

// Unwrap returns both the context error and ErrBridgeTimeout.
func (e *TimeoutError) Unwrap() []error { return []error{ErrBridgeTimeout, e.Err} }

// DelegatedFailure is the outcome of a script that ran and exited non-zero.
// It is not a bridge malfunction; the captured stderr is the script's own
// report.
type DelegatedFailure struct {
	ExitCode int
	Stderr   []byte
}

func (e *DelegatedFailure) Error() string {
	msg := strings.TrimSpace(string(e.Stderr))
	if msg == "" {
		return fmt.Sprintf("interpreter exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("interpreter exited with code %d: %s", e.ExitCode, msg)
}

// Unwrap returns ErrDelegatedFailure.
func (e *DelegatedFailure) Unwrap() error { return ErrDelegatedFailure }
