package runner

import (
	"context"

	"github.com/moka-lang/moka/internal/logging"
)

// ParseBuilder configures a ParseRunner.
type ParseBuilder = Builder[*ParseRunner]

// NewParseBuilder returns a builder that requires module, input and output.
func NewParseBuilder() *ParseBuilder {
	return newBuilder(blueprint[*ParseRunner]{
		kind:     KindParse,
		flags:    []Field{FlagVerbose, FlagArchive},
		args:     []Field{ArgModule, ArgInput, ArgOutput},
		required: []Field{ArgModule, ArgInput, ArgOutput},
		project: func(v values) *ParseRunner {
			return &ParseRunner{
				verbose: v.flag(FlagVerbose),
				archive: v.flag(FlagArchive),
				module:  v.arg(ArgModule),
				input:   v.arg(ArgInput),
				output:  v.arg(ArgOutput),
				engine:  v.engine,
			}
		},
	})
}

// ParseRunner interprets a module against an input, writing to output.
// It backs the "use" command.
type ParseRunner struct {
	verbose bool
	archive bool
	module  string
	input   string
	output  string
	engine  Engine
}

// Kind implements Runner.
func (r *ParseRunner) Kind() Kind { return KindParse }

// Verbose reports whether verbose output was requested.
func (r *ParseRunner) Verbose() bool { return r.verbose }

// Archive reports whether the module was declared an archive.
func (r *ParseRunner) Archive() bool { return r.archive }

// Module returns the module folder path.
func (r *ParseRunner) Module() string { return r.module }

// Input returns the path of the file to parse.
func (r *ParseRunner) Input() string { return r.input }

// Output returns the path the result is written to.
func (r *ParseRunner) Output() string { return r.output }

// Run implements Runner.
func (r *ParseRunner) Run(ctx context.Context) error {
	logging.FromContext(ctx).Debug("running parse",
		"module", r.module, "input", r.input, "output", r.output, "archive", r.archive)
	logModule(ctx, r.module)
	if r.engine == nil {
		return nil
	}
	return r.engine.Run(ctx, r)
}
