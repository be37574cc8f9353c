package resources

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/moka-lang/moka/internal/branding"
)

// Directory and file name constants for the resource layout.
const (
	DirName       = "resources"
	PyEnvDir      = "py_env"
	RunnerScript  = "interp_runner.py"
	DefaultOption = "this"
)

// executable is swapped in tests.
var executable = os.Executable

// Dir returns the resource search path. It checks the MOKA_RESOURCES
// environment variable first, then the override argument (typically the
// resources_dir config key), then falls back to <dir of the moka binary>/resources.
func Dir(override string) (string, error) {
	if v := os.Getenv(branding.EnvVar("RESOURCES")); v != "" {
		return v, nil
	}
	if override != "" {
		return override, nil
	}
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DirName), nil
}

// RunnerScriptPath returns the path of the interpreter support script inside
// a resource directory.
func RunnerScriptPath(dir string) string {
	return filepath.Join(dir, PyEnvDir, RunnerScript)
}

// DefaultOptions is the options payload sent to the support script when the
// caller has nothing more specific.
func DefaultOptions() map[string][]string {
	return map[string][]string{DefaultOption: {}}
}

// Exists reports whether dir is an existing directory.
func Exists(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking resource directory %s: %w", dir, err)
	}
	return info.IsDir(), nil
}
