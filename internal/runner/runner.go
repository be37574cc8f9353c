package runner

import "context"

// Kind identifies which runner a builder produces.
type Kind string

// Supported runner kinds.
const (
	KindParse   Kind = "parse"
	KindCompile Kind = "compile"
)

// RunnerName returns the type name used in diagnostics, e.g. "ParseRunner".
func (k Kind) RunnerName() string {
	switch k {
	case KindParse:
		return "ParseRunner"
	case KindCompile:
		return "CompileRunner"
	default:
		return string(k) + " runner"
	}
}

// Runner is an immutable, validated unit of work. Run returns nil on success
// or an error whose message is meant for the user.
type Runner interface {
	Kind() Kind
	Run(ctx context.Context) error
}

// Engine performs the actual parse or compile work for a runner. Builders
// attach one with WithEngine; runners without an engine succeed without
// touching the module.
type Engine interface {
	Run(ctx context.Context, r Runner) error
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(ctx context.Context, r Runner) error

// Run calls f(ctx, r).
func (f EngineFunc) Run(ctx context.Context, r Runner) error { return f(ctx, r) }
