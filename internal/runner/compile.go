package runner

import (
	"context"

	"github.com/moka-lang/moka/internal/logging"
)

// CompileBuilder configures a CompileRunner.
type CompileBuilder = Builder[*CompileRunner]

// NewCompileBuilder returns a builder that requires module and output.
// An input argument is not part of compilation and is dropped if set.
func NewCompileBuilder() *CompileBuilder {
	return newBuilder(blueprint[*CompileRunner]{
		kind:     KindCompile,
		flags:    []Field{FlagVerbose, FlagArchive},
		args:     []Field{ArgModule, ArgOutput},
		required: []Field{ArgModule, ArgOutput},
		project: func(v values) *CompileRunner {
			return &CompileRunner{
				verbose: v.flag(FlagVerbose),
				archive: v.flag(FlagArchive),
				module:  v.arg(ArgModule),
				output:  v.arg(ArgOutput),
				engine:  v.engine,
			}
		},
	})
}

// CompileRunner compiles a module to an output artifact.
type CompileRunner struct {
	verbose bool
	archive bool
	module  string
	output  string
	engine  Engine
}

// Kind implements Runner.
func (r *CompileRunner) Kind() Kind { return KindCompile }

// Verbose reports whether verbose output was requested.
func (r *CompileRunner) Verbose() bool { return r.verbose }

// Archive reports whether the module was declared an archive.
func (r *CompileRunner) Archive() bool { return r.archive }

// Module returns the module folder path.
func (r *CompileRunner) Module() string { return r.module }

// Output returns the path of the compiled artifact.
func (r *CompileRunner) Output() string { return r.output }

// Run implements Runner.
func (r *CompileRunner) Run(ctx context.Context) error {
	logging.FromContext(ctx).Debug("running compile",
		"module", r.module, "output", r.output, "archive", r.archive)
	logModule(ctx, r.module)
	if r.engine == nil {
		return nil
	}
	return r.engine.Run(ctx, r)
}
