// Package manifest reads moka.toml, the descriptor at the root of a module
// folder. It decodes the [meta] and [options] tables, validates the document
// against an embedded JSON Schema, and checks the module's semantic version
// and toolchain constraint.
package manifest
