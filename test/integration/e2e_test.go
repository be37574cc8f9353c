//go:build integration

package integration_test

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"compile", []string{"compile", "mymod", "out.bin"}, 0, "", ""},
		{"use", []string{"-v", "use", "mymod", "in.dat", "out.dat"}, 0, "", "dispatching"},
		{"version", []string{"--version"}, 0, "v0.4.2", ""},
		{"version beats command", []string{"--version", "use", "a"}, 0, "v0.4.2", ""},
		{"help", []string{"--help", "compile", "m", "o"}, 0, "compile <module> <output>", ""},
		{"archive", []string{"-a", "compile", "mymod", "out.bin"}, 1, "", "Archive format is not currently implemented"},
		{"no command", nil, 1, "", "no command given"},
		{"unknown command", []string{"frobnicate"}, 1, "", `no such command "frobnicate"`},
		{"missing argument", []string{"use", "mymod", "in.dat"}, 2, "", "--help"},
		{"unknown flag", []string{"--colour"}, 2, "", "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			res := runMoka(t, env, tt.args...)

			assertCode(t, res, tt.wantCode)
			if !strings.Contains(res.Stdout, tt.wantStdout) {
				t.Errorf("stdout missing %q:\n%s", tt.wantStdout, res.Stdout)
			}
			if !strings.Contains(res.Stderr, tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, res.Stderr)
			}
		})
	}
}

// TestDoctorFindsResourcesBesideBinary exercises the default resource
// lookup: <dir of moka>/resources with no override.
func TestDoctorFindsResourcesBesideBinary(t *testing.T) {
	requireShell(t)
	env := setupTestEnv(t)
	env.setenv("MOKA_INTERPRETER", "sh")

	bin := installBinary(t)
	resDir := filepath.Join(filepath.Dir(bin), "resources")
	writeRunner(t, resDir, `echo "resources=$1 options=$2"`)

	res := runBinary(t, env, bin, "doctor")
	assertCode(t, res, 0)
	want := "Out resources=" + resDir + ` options={"this":[]}`
	if !strings.Contains(res.Stdout, want) {
		t.Errorf("stdout missing %q:\n%s", want, res.Stdout)
	}
}

func TestDoctorReportsMissingInterpreter(t *testing.T) {
	env := setupTestEnv(t)
	env.setenv("MOKA_INTERPRETER", "moka-no-such-interpreter")
	resDir := t.TempDir()
	env.setenv("MOKA_RESOURCES", resDir)
	writeRunner(t, resDir, "exit 0")

	res := runMoka(t, env, "doctor")
	assertCode(t, res, 1)
	if !strings.Contains(res.Stdout, "[FAIL] spawn") {
		t.Errorf("stdout missing spawn classification:\n%s", res.Stdout)
	}
}

// TestFullFlowConfigAndInspect sets the interpreter through the config
// command, then validates a module and forwards its options to the bridge.
func TestFullFlowConfigAndInspect(t *testing.T) {
	requireShell(t)
	env := setupTestEnv(t)

	resDir := t.TempDir()
	env.setenv("MOKA_RESOURCES", resDir)
	writeRunner(t, resDir, `echo "payload=$2"; echo "res=$MOKA_RESOURCES" >&2`)

	// Step 1: persist the interpreter choice.
	res := runMoka(t, env, "config", "set", "interpreter", "sh")
	assertCode(t, res, 0)
	assertFileContains(t, filepath.Join(env.HomeDir, ".moka", "config.yaml"), "interpreter: sh")

	// Step 2: write a module.
	writeFile(t, filepath.Join(env.ModuleDir, "moka.toml"), `[meta]
name = "Announcejs"
version = "0.1.0"
moka = ">= 0.1.0"

[options]
core = "Announcejs"
`)

	// Step 3: inspect with the bridge.
	res = runMoka(t, env, "inspect", "--bridge", env.ModuleDir)
	assertCode(t, res, 0)
	for _, want := range []string{"Announcejs", `Out payload={"core":"Announcejs"}`, "Err res=" + resDir} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, res.Stdout)
		}
	}

	// Step 4: a constraint the build cannot meet fails.
	writeFile(t, filepath.Join(env.ModuleDir, "moka.toml"), `[meta]
name = "future"
version = "2.0.0"
moka = ">= 9.0.0"
`)
	res = runMoka(t, env, "inspect", env.ModuleDir)
	assertCode(t, res, 1)
	if !strings.Contains(res.Stderr, "incompatible moka version") {
		t.Errorf("stderr missing incompatibility:\n%s", res.Stderr)
	}
}
