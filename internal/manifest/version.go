package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrIncompatibleToolchain is returned by CheckVersion when the running moka
// does not satisfy the module's meta.moka constraint.
var ErrIncompatibleToolchain = errors.New("incompatible moka version")

// DevVersion is the toolchain version of builds without ldflags. Constraint
// checks are skipped for it.
const DevVersion = "dev"

// ModuleVersion parses meta.version as a semantic version.
func (m *Module) ModuleVersion() (*semver.Version, error) {
	v, err := parseSemver(m.Meta.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing module version %q: %w", m.Meta.Version, err)
	}
	return v, nil
}

// CheckVersion verifies that meta.version is valid semver and that toolchain
// satisfies meta.moka when the module declares one.
func CheckVersion(m *Module, toolchain string) error {
	if _, err := m.ModuleVersion(); err != nil {
		return err
	}
	if m.Meta.Moka == "" || toolchain == DevVersion {
		return nil
	}

	constraint, err := semver.NewConstraint(m.Meta.Moka)
	if err != nil {
		return fmt.Errorf("parsing moka constraint %q: %w", m.Meta.Moka, err)
	}
	tv, err := parseSemver(toolchain)
	if err != nil {
		return fmt.Errorf("parsing toolchain version %q: %w", toolchain, err)
	}
	if !constraint.Check(tv) {
		return fmt.Errorf("%w: module %s requires moka %s, running %s",
			ErrIncompatibleToolchain, m.Meta.Name, m.Meta.Moka, tv)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
