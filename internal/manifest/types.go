package manifest

// FileName is the descriptor file expected at the root of a module folder.
const FileName = "moka.toml"

// Module is a decoded moka.toml.
type Module struct {
	Meta    Meta           `toml:"meta" json:"meta"`
	Options map[string]any `toml:"options,omitempty" json:"options,omitempty"`
}

// Meta is the [meta] table: identity and licensing of a module.
type Meta struct {
	Name        string `toml:"name" json:"name"`
	Version     string `toml:"version" json:"version"`
	Author      string `toml:"author,omitempty" json:"author,omitempty"`
	License     string `toml:"license,omitempty" json:"license,omitempty"`
	Description string `toml:"description,omitempty" json:"description,omitempty"`
	// Moka is an optional semver constraint on the toolchain version,
	// e.g. ">= 0.2.0".
	Moka string `toml:"moka,omitempty" json:"moka,omitempty"`
}
