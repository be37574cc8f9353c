package runner

import "slices"

// blueprint describes one runner kind: which names it accepts, which
// arguments it cannot do without, and how validated values become a runner.
type blueprint[R Runner] struct {
	kind     Kind
	flags    []Field
	args     []Field
	required []Field
	project  func(v values) R
}

// values is the read-only view of a validated Config handed to a blueprint.
type values struct {
	cfg    *Config
	engine Engine
}

func (v values) arg(name Field) string {
	s, _ := v.cfg.Arg(name)
	return s
}

func (v values) flag(name Field) bool {
	return v.cfg.Flag(name)
}

// Builder accumulates configuration for a runner of type R and validates it
// once, in Build. The zero value is not usable; use NewParseBuilder or
// NewCompileBuilder.
//
// Names the runner kind does not recognize are accepted by SetFlag and SetArg
// and dropped by Build, so one calling convention serves every kind. Call
// Strict to turn those names into an UnknownFieldError instead.
type Builder[R Runner] struct {
	bp     blueprint[R]
	cfg    *Config
	strict bool
	engine Engine
}

func newBuilder[R Runner](bp blueprint[R]) *Builder[R] {
	return &Builder[R]{bp: bp, cfg: NewConfig()}
}

// Kind returns the kind of runner this builder produces.
func (b *Builder[R]) Kind() Kind { return b.bp.kind }

// Required returns the argument names Build insists on, in check order.
func (b *Builder[R]) Required() []Field { return slices.Clone(b.bp.required) }

// SetFlag records a named boolean and returns the builder for chaining.
func (b *Builder[R]) SetFlag(name Field, value bool) *Builder[R] {
	b.cfg.SetFlag(name, value)
	return b
}

// SetArg records a named string and returns the builder for chaining.
func (b *Builder[R]) SetArg(name Field, value string) *Builder[R] {
	b.cfg.SetArg(name, value)
	return b
}

// Strict makes Build reject unrecognized names.
func (b *Builder[R]) Strict() *Builder[R] {
	b.strict = true
	return b
}

// WithEngine attaches the engine the built runner delegates Run to.
func (b *Builder[R]) WithEngine(e Engine) *Builder[R] {
	b.engine = e
	return b
}

// Build validates the accumulated configuration and returns a runner. When
// a required argument is absent it returns the zero R and a
// *MissingFieldError naming the first missing field in Required order.
// The returned runner holds its own copies of every value.
func (b *Builder[R]) Build() (R, error) {
	var zero R

	if b.strict {
		if name, ok := b.firstUnknown(); ok {
			return zero, &UnknownFieldError{Kind: b.bp.kind, Field: name}
		}
	}

	for _, name := range b.bp.required {
		if _, ok := b.cfg.Arg(name); !ok {
			return zero, &MissingFieldError{Kind: b.bp.kind, Field: name}
		}
	}

	return b.bp.project(values{cfg: b.cfg, engine: b.engine}), nil
}

func (b *Builder[R]) firstUnknown() (Field, bool) {
	for _, name := range b.cfg.Names() {
		if _, isFlag := b.cfg.flags[name]; isFlag && !slices.Contains(b.bp.flags, name) {
			return name, true
		}
		if _, isArg := b.cfg.args[name]; isArg && !slices.Contains(b.bp.args, name) {
			return name, true
		}
	}
	return "", false
}
