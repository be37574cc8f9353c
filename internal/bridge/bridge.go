package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moka-lang/moka/internal/branding"
)

// Bridge runs an Invocation in an external interpreter.
type Bridge interface {
	// Invoke blocks until the process exits or ctx is done. A non-nil error
	// means the bridge itself failed; a script that ran and exited non-zero
	// is reported through Result.ExitCode instead.
	Invoke(ctx context.Context, inv Invocation) (*Result, error)
}

// Invocation is one request to an interpreter.
type Invocation struct {
	// Script is the path of the support script handed to the interpreter.
	Script string
	// Args follow the script on the command line. By convention the first is
	// the resource search path and the second a JSON options payload.
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env holds KEY=VALUE pairs layered over the current environment.
	Env []string
}

// NewInvocation builds the conventional invocation: the resource path
// followed by options serialized as JSON. A nil options value is sent as {}.
// The resource path is also exported as MOKA_RESOURCES.
func NewInvocation(script, resourcePath string, options any) (Invocation, error) {
	if options == nil {
		options = map[string]any{}
	}
	payload, err := json.Marshal(options)
	if err != nil {
		return Invocation{}, fmt.Errorf("serializing bridge options: %w", err)
	}
	return Invocation{
		Script: script,
		Args:   []string{resourcePath, string(payload)},
		Env:    []string{branding.EnvVar("RESOURCES") + "=" + resourcePath},
	}, nil
}

// Result captures the output of a finished interpreter process.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the process exited with status 0.
func (r *Result) Success() bool { return r.ExitCode == 0 }

// Failure returns a *DelegatedFailure for a non-zero exit, or nil.
func (r *Result) Failure() error {
	if r.Success() {
		return nil
	}
	return &DelegatedFailure{ExitCode: r.ExitCode, Stderr: r.Stderr}
}
