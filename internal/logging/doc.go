// Package logging builds the charmbracelet/log logger used across the CLI and
// carries it through context.Context so that runners and the interpreter
// bridge log with the same settings as the command that invoked them.
package logging
