package branding

import (
	"bytes"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cli name", CLIName(), "moka"},
		{"display name", DisplayName(), "Moka"},
		{"home dir", HomeDir(), ".moka"},
		{"env prefix", EnvPrefix(), "MOKA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("resources"); got != "MOKA_RESOURCES" {
		t.Errorf("EnvVar(\"resources\") = %q, want %q", got, "MOKA_RESOURCES")
	}
}

func TestEmbeddedBrandingKeysAreKnown(t *testing.T) {
	dec := yaml.NewDecoder(bytes.NewReader(rawBranding))
	dec.KnownFields(true)

	var b brand
	if err := dec.Decode(&b); err != nil {
		t.Fatalf("branding.yaml: %v", err)
	}
}
