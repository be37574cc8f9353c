package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/moka-lang/moka/internal/logging"
)

// DefaultInterpreter is used when Interpreter.Path is empty.
const DefaultInterpreter = "python3"

// waitDelay bounds how long Wait keeps draining pipes after the process has
// been killed, so an orphaned grandchild holding them open cannot hang us.
const waitDelay = 2 * time.Second

// Interpreter runs support scripts with an external interpreter executable.
type Interpreter struct {
	// Path is the interpreter executable, either a name resolved through
	// PATH or a filesystem path.
	Path string
	// Timeout bounds the wait for the process. Zero relies on ctx alone.
	Timeout time.Duration
	// Stdout and Stderr, when set, receive the streams as they are produced
	// in addition to the captured copies.
	Stdout io.Writer
	Stderr io.Writer
}

// Invoke implements Bridge.
func (in *Interpreter) Invoke(ctx context.Context, inv Invocation) (*Result, error) {
	name := in.Path
	if name == "" {
		name = DefaultInterpreter
	}

	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, &SpawnError{Interpreter: name, Script: inv.Script, Err: err}
	}
	if err := checkScript(inv.Script); err != nil {
		return nil, &SpawnError{Interpreter: name, Script: inv.Script, Err: err}
	}

	if in.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, in.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, append([]string{inv.Script}, inv.Args...)...)
	cmd.Dir = inv.Dir
	cmd.WaitDelay = waitDelay
	cmd.Env = os.Environ()
	for _, kv := range inv.Env {
		key, value, _ := strings.Cut(kv, "=")
		cmd.Env = setEnv(cmd.Env, key, value)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(&stdoutBuf, in.Stdout)
	cmd.Stderr = tee(&stderrBuf, in.Stderr)

	logger := logging.FromContext(ctx)
	logger.Debug("starting interpreter", "interpreter", bin, "script", inv.Script, "args", len(inv.Args))

	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &TimeoutError{Script: inv.Script, Timeout: in.Timeout, Err: ctxErr}
		}
		return nil, &SpawnError{Interpreter: name, Script: inv.Script, Err: err}
	}

	err = cmd.Wait()

	result := &Result{
		Stdout: stdoutBuf.Bytes(),
		Stderr: stderrBuf.Bytes(),
	}

	// A clean exit that races the deadline is still a success.
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			result.ExitCode = -1
			return result, &TimeoutError{Script: inv.Script, Timeout: in.Timeout, Err: ctxErr}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logger.Debug("interpreter exited", "script", inv.Script, "code", result.ExitCode)
			return result, nil
		}
		return result, &IOError{Script: inv.Script, Err: err}
	}

	logger.Debug("interpreter exited", "script", inv.Script, "code", 0)
	return result, nil
}

// checkScript confirms the script exists, is a regular file and is readable,
// so a bad path surfaces as a spawn failure rather than as the interpreter's
// own non-zero exit.
func checkScript(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("script not found: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("script %s is a directory", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("script not readable: %w", err)
	}
	return f.Close()
}

func tee(capture *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return capture
	}
	return io.MultiWriter(w, capture)
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
