// Package bridge delegates work to a separate interpreter process. An
// Interpreter runs a support script with a resource search path and a JSON
// options payload, captures both output streams, and separates a bridge that
// could not start (SpawnError) from a script that ran and failed
// (DelegatedFailure).
package bridge
