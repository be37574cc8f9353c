package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Parse decodes moka.toml contents.
func Parse(data []byte) (*Module, error) {
	var m Module
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding module descriptor: %w", err)
	}
	return &m, nil
}

// ParseFile reads and decodes a descriptor at path.
func ParseFile(path string) (*Module, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// Load reads the descriptor of the module folder at dir.
func Load(dir string) (*Module, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading module %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("module %s is not a folder", dir)
	}
	return ParseFile(filepath.Join(dir, FileName))
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
