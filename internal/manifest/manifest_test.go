package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile_Valid(t *testing.T) {
	m, err := ParseFile(testPath("valid.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	wantMeta := Meta{
		Name:    "Announcejs",
		Version: "0.1.0",
		Author:  "Louis Capitanchik",
		License: "BSD 3-Clause",
		Moka:    ">= 0.1.0",
	}
	if diff := cmp.Diff(wantMeta, m.Meta); diff != "" {
		t.Errorf("meta mismatch (-want +got):\n%s", diff)
	}

	if m.Options["core"] != "Announcejs" {
		t.Errorf("options.core = %v, want %q", m.Options["core"], "Announcejs")
	}
	if m.Options["stripwhitespace"] != true {
		t.Errorf("options.stripwhitespace = %v, want true", m.Options["stripwhitespace"])
	}
	if m.Options["depth"] != int64(3) {
		t.Errorf("options.depth = %#v, want int64(3)", m.Options["depth"])
	}
}

func TestParseFile_Minimal(t *testing.T) {
	m, err := ParseFile(testPath("valid-minimal.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if m.Meta.Name != "tiny" {
		t.Errorf("Name = %q, want %q", m.Meta.Name, "tiny")
	}
	if m.Options != nil {
		t.Errorf("Options = %v, want nil", m.Options)
	}
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"not toml", "invalid-not-toml.toml"},
		{"wrong field type", "invalid-name-type.toml"},
		{"missing file", "nonexistent.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFile(testPath(tt.file)); err == nil {
				t.Fatalf("ParseFile(%s) expected error, got nil", tt.file)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(testPath("valid-minimal.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Meta.Name != "tiny" {
		t.Errorf("Name = %q, want %q", m.Meta.Name, "tiny")
	}
}

func TestLoad_Errors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		dir  string
	}{
		{"missing folder", filepath.Join(t.TempDir(), "gone")},
		{"not a folder", file},
		{"folder without descriptor", t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.dir); err == nil {
				t.Errorf("Load(%s) expected error, got nil", tt.dir)
			}
		})
	}
}

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid.toml", "valid-minimal.toml", "bad-version.toml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		path    string
		keyword string
	}{
		{"invalid-missing-meta.toml", "", "required"},
		{"invalid-bad-name.toml", "/meta/name", "pattern"},
		{"invalid-name-type.toml", "/meta/name", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, got valid", tt.file)
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.path && issue.Keyword == tt.keyword {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %q has empty message", issue.Path)
				}
			}
			if !found {
				t.Errorf("no %s issue at %q in %+v", tt.keyword, tt.path, result.Issues)
			}
		})
	}
}

func TestValidateFile_NotTOML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-toml.toml")); err == nil {
		t.Fatal("expected error for invalid TOML, got nil")
	}
}

func TestValidate_DatesAreAccepted(t *testing.T) {
	data := []byte(`
[meta]
name = "dated"
version = "1.0.0"

[options]
released = 2016-05-27
at = 2016-05-27T07:32:00Z
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %+v", result.Issues)
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		name             string
		file             string
		toolchain        string
		wantErr          bool
		wantIncompatible bool
	}{
		{"constraint satisfied", "valid.toml", "0.3.0", false, false},
		{"constraint satisfied with v prefix", "valid.toml", "v0.1.0", false, false},
		{"no constraint", "valid-minimal.toml", "0.0.1", false, false},
		{"dev build skips constraint", "needs-future.toml", DevVersion, false, false},
		{"constraint not satisfied", "needs-future.toml", "0.3.0", true, true},
		{"module version not semver", "bad-version.toml", "0.3.0", true, false},
		{"toolchain not semver", "valid.toml", "nightly", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ParseFile error: %v", err)
			}

			err = CheckVersion(m, tt.toolchain)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := errors.Is(err, ErrIncompatibleToolchain); got != tt.wantIncompatible {
				t.Errorf("errors.Is(ErrIncompatibleToolchain) = %v, want %v", got, tt.wantIncompatible)
			}
		})
	}
}
