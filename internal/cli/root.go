package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/moka-lang/moka/internal/branding"
	"github.com/moka-lang/moka/internal/config"
	"github.com/moka-lang/moka/internal/dispatch"
	"github.com/moka-lang/moka/internal/logging"
	"github.com/moka-lang/moka/internal/manifest"
	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// displayVersion is what --version prints: v<semver>, or the raw string for
// unstamped builds.
func (b BuildInfo) displayVersion() string {
	if b.Version == "" || b.Version == manifest.DevVersion {
		return manifest.DevVersion
	}
	return "v" + strings.TrimPrefix(b.Version, "v")
}

// toolchain is the version checked against a module's meta.moka constraint.
func (b BuildInfo) toolchain() string {
	if b.Version == "" {
		return manifest.DevVersion
	}
	return b.Version
}

// runnerAnnotation marks commands whose help is rendered by the dispatcher.
const runnerAnnotation = "moka.runner"

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	archive bool
	verbose bool
	version bool

	build    BuildInfo
	settings config.Settings
}

func usageText() string {
	name := branding.CLIName()
	return fmt.Sprintf(`%[2]s

Usage:
    %[1]s [-va] use <module> <input> <output>
    %[1]s [-va] compile <module> <output>
    %[1]s -h | --help
    %[1]s --version

Options:
    -a, --archive   The specified module is an archive instead of a folder
    -h, --help      Show this text
    -v, --verbose   Enable verbose output
    --version       Show the installed %[3]s version

Other commands:
    inspect <module>         Validate and describe a module's %[4]s
    doctor                   Check that the interpreter bridge works
    config get|set|list      Read and write user settings
    version                  Print build information`,
		name, branding.Description(), branding.DisplayName(), manifest.FileName)
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	opts := &rootOptions{build: build}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` compiles modules and runs them against input files.
A module is a folder holding a ` + manifest.FileName + ` descriptor.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: opts.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := opts.raw(dispatch.CommandNone)
			if len(args) > 0 {
				raw.Command = dispatch.Command(args[0])
			}
			return opts.dispatch(cmd, raw)
		},
		Annotations: map[string]string{runnerAnnotation: "root"},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.archive, "archive", "a", false, "The specified module is an archive instead of a folder")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&opts.version, "version", false, "Show the installed "+branding.DisplayName()+" version")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &dispatch.ExitError{Code: dispatch.ExitUsage, Err: err}
	})

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if _, ok := c.Annotations[runnerAnnotation]; !ok {
			defaultHelp(c, args)
			return
		}
		ctx := c.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		raw := dispatch.RawArguments{Help: true, Version: opts.version}
		if err := opts.dispatcher(c).Dispatch(ctx, raw); err != nil {
			fmt.Fprintln(c.ErrOrStderr(), err)
		}
	})

	cmd.AddCommand(
		newUseCmd(opts),
		newCompileCmd(opts),
		newInspectCmd(opts),
		newDoctorCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(opts),
	)
	return cmd
}

// Execute runs the command tree against os.Args and returns the process exit
// code. Errors are reported on stderr.
func Execute(version, commit, date string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd(BuildInfo{Version: version, Commit: commit, Date: date})
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		if dispatch.ExitCode(err) == dispatch.ExitUsage {
			fmt.Fprintf(root.ErrOrStderr(), "Run '%s --help' for usage.\n", branding.CLIName())
		}
	}
	return dispatch.ExitCode(err)
}

// setup loads user settings and installs the logger every command reads
// from its context.
func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	config.Load()
	o.settings = config.Current()

	logger := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:   o.settings.LogLevel,
		Format:  o.settings.LogFormat,
		Verbose: o.verbose,
	})
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	return nil
}

func (o *rootOptions) raw(command dispatch.Command) dispatch.RawArguments {
	return dispatch.RawArguments{
		Command: command,
		Archive: o.archive,
		Verbose: o.verbose,
		Version: o.version,
	}
}

func (o *rootOptions) dispatcher(cmd *cobra.Command) *dispatch.Dispatcher {
	return &dispatch.Dispatcher{
		Stdout:  cmd.OutOrStdout(),
		Usage:   usageText(),
		Version: o.build.displayVersion(),
	}
}

func (o *rootOptions) dispatch(cmd *cobra.Command, raw dispatch.RawArguments) error {
	return o.dispatcher(cmd).Dispatch(cmd.Context(), raw)
}

// versionFirst wraps a RunE so that --version prints the version and nothing
// else, whatever command it is given to.
func (o *rootOptions) versionFirst(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if o.version {
			return o.dispatch(cmd, dispatch.RawArguments{Version: true})
		}
		return fn(cmd, args)
	}
}

// exactArgs is cobra.ExactArgs except that --version bypasses the count, and
// a mismatch is a usage error.
func (o *rootOptions) exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if o.version {
			return nil
		}
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &dispatch.ExitError{Code: dispatch.ExitUsage, Err: err}
		}
		return nil
	}
}
