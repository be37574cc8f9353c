package runner

import "slices"

// Field names a flag or argument a builder may receive.
type Field string

// Recognized field names. Flags are booleans; arguments are strings.
const (
	FlagVerbose Field = "verbose"
	FlagArchive Field = "archive"

	ArgModule Field = "module"
	ArgInput  Field = "input"
	ArgOutput Field = "output"
)

// Config is the untyped accumulator behind every Builder. It records flags and
// arguments by name without knowing which names the eventual runner accepts.
// Writing a name twice keeps the last value.
type Config struct {
	flags map[Field]bool
	args  map[Field]string

	// order preserves first-write order so strict validation reports
	// unknown names deterministically.
	order []Field
}

// NewConfig returns an empty accumulator.
func NewConfig() *Config {
	return &Config{
		flags: make(map[Field]bool),
		args:  make(map[Field]string),
	}
}

// SetFlag records a named boolean.
func (c *Config) SetFlag(name Field, value bool) {
	c.touch(name)
	c.flags[name] = value
}

// SetArg records a named string.
func (c *Config) SetArg(name Field, value string) {
	c.touch(name)
	c.args[name] = value
}

// Flag returns the recorded value of a flag; unset flags read as false.
func (c *Config) Flag(name Field) bool {
	return c.flags[name]
}

// Arg returns the recorded value of an argument and whether it was set.
func (c *Config) Arg(name Field) (string, bool) {
	v, ok := c.args[name]
	return v, ok
}

// Names returns every name written so far, in first-write order.
func (c *Config) Names() []Field {
	return slices.Clone(c.order)
}

func (c *Config) touch(name Field) {
	if _, ok := c.flags[name]; ok {
		return
	}
	if _, ok := c.args[name]; ok {
		return
	}
	c.order = append(c.order, name)
}
