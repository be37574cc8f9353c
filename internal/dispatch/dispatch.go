// Package dispatch maps a decoded command line onto a runner. It applies the
// version, help and archive short-circuits, picks the builder for the
// command, feeds it the decoded fields, and runs whatever runner comes out
// without caring which kind it is.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/moka-lang/moka/internal/logging"
	"github.com/moka-lang/moka/internal/runner"
)

// Command selects a runner.
type Command string

// Recognized commands.
const (
	CommandNone    Command = ""
	CommandUse     Command = "use"
	CommandCompile Command = "compile"
)

// FeatureArchive names archive-backed modules in UnsupportedFeatureError.
const FeatureArchive = "archive"

// RawArguments is the decoded command line. It is built once per process by
// the CLI layer and not modified afterwards. An empty Module, Input or Output
// means the positional was not given.
type RawArguments struct {
	Command Command

	Archive bool
	Verbose bool
	Help    bool
	Version bool

	Module string
	Input  string
	Output string
}

// Dispatcher runs one command per call to Dispatch.
type Dispatcher struct {
	// Stdout receives help and version text. Nil means os.Stdout.
	Stdout io.Writer
	// Usage is printed for Help.
	Usage string
	// Version is printed verbatim for Version.
	Version string
	// Engine, when set, is attached to every runner built.
	Engine runner.Engine

	// NewParseBuilder and NewCompileBuilder default to the runner package
	// constructors.
	NewParseBuilder   func() *runner.ParseBuilder
	NewCompileBuilder func() *runner.CompileBuilder
}

// Dispatch executes args. Version wins over help, help over archive, and
// archive over any command, so those flags never reach a builder.
func (d *Dispatcher) Dispatch(ctx context.Context, args RawArguments) error {
	logger := logging.FromContext(ctx)

	switch {
	case args.Version:
		_, err := fmt.Fprintln(d.stdout(), d.Version)
		return err
	case args.Help:
		_, err := fmt.Fprintln(d.stdout(), d.Usage)
		return err
	case args.Archive:
		return &UnsupportedFeatureError{Feature: FeatureArchive}
	}

	r, err := d.build(args)
	if err != nil {
		return err
	}

	logger.Debug("dispatching", "command", string(args.Command), "runner", r.Kind().RunnerName())
	if err := r.Run(ctx); err != nil {
		return fmt.Errorf("%s: %w", args.Command, err)
	}
	return nil
}

func (d *Dispatcher) build(args RawArguments) (runner.Runner, error) {
	switch args.Command {
	case CommandUse:
		newBuilder := d.NewParseBuilder
		if newBuilder == nil {
			newBuilder = runner.NewParseBuilder
		}
		b := newBuilder().
			WithEngine(d.Engine).
			SetFlag(runner.FlagVerbose, args.Verbose).
			SetFlag(runner.FlagArchive, args.Archive)
		return finalize(setPositionals(b,
			positional{runner.ArgModule, args.Module},
			positional{runner.ArgInput, args.Input},
			positional{runner.ArgOutput, args.Output}))
	case CommandCompile:
		newBuilder := d.NewCompileBuilder
		if newBuilder == nil {
			newBuilder = runner.NewCompileBuilder
		}
		b := newBuilder().
			WithEngine(d.Engine).
			SetFlag(runner.FlagVerbose, args.Verbose).
			SetFlag(runner.FlagArchive, args.Archive)
		return finalize(setPositionals(b,
			positional{runner.ArgModule, args.Module},
			positional{runner.ArgOutput, args.Output}))
	default:
		return nil, &UnrecognizedCommandError{Command: args.Command}
	}
}

type positional struct {
	name  runner.Field
	value string
}

// setPositionals records only the positionals that were given, so a missing
// one is reported by Build instead of reaching the runner as "".
func setPositionals[R runner.Runner](b *runner.Builder[R], ps ...positional) *runner.Builder[R] {
	for _, p := range ps {
		if p.value != "" {
			b.SetArg(p.name, p.value)
		}
	}
	return b
}

// finalize builds b and widens the result to runner.Runner without letting a
// typed nil escape on failure.
func finalize[R runner.Runner](b *runner.Builder[R]) (runner.Runner, error) {
	r, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (d *Dispatcher) stdout() io.Writer {
	if d.Stdout == nil {
		return os.Stdout
	}
	return d.Stdout
}
