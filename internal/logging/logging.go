package logging

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is attached to every record emitted by loggers built here.
const Prefix = "moka"

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

var loggerKey = key{}

// Options configures a logger built by New.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Format is "text", "json" or "logfmt". Empty means text.
	Format string
	// Verbose forces debug level regardless of Level.
	Verbose bool
}

// New creates a logger writing to w. It does not touch the package-level
// default logger of charmbracelet/log.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:    Prefix,
		Level:     ParseLevel(opts.Level),
		Formatter: parseFormatter(opts.Format),
	})
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// ParseLevel maps a level name to a log.Level, defaulting to info for
// empty or unrecognized input.
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func parseFormatter(s string) log.Formatter {
	switch strings.ToLower(s) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx. A context without one yields a
// logger that discards everything, so library code never needs a nil check.
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
