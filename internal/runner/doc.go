// Package runner turns loosely typed command-line configuration into
// validated, immutable runnable units. A Builder accumulates named flags and
// arguments, and Build either yields a fully configured Runner or reports the
// first missing required field. Two kinds exist: ParseRunner backs the "use"
// command and CompileRunner backs "compile".
package runner
