// Package config manages user-level settings stored at ~/.moka/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the interpreter executable and the bridge timeout, with MOKA_* environment
// variables taking precedence over the file.
package config
