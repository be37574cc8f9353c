package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moka-lang/moka/internal/logging"
	"github.com/moka-lang/moka/internal/manifest"
)

func debugContext(buf *bytes.Buffer) context.Context {
	logger := logging.New(buf, logging.Options{Verbose: true})
	return logging.WithLogger(context.Background(), logger)
}

func TestRun_LogsModuleDescriptor(t *testing.T) {
	dir := t.TempDir()
	descriptor := "[meta]\nname = \"greeter\"\nversion = \"1.2.0\"\n"
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(descriptor), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewCompileBuilder().SetArg(ArgModule, dir).SetArg(ArgOutput, "out.bin").Build()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.Run(debugContext(&buf)); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	for _, want := range []string{"module descriptor", "greeter", "1.2.0"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRun_MissingDescriptorIsNotAnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	r, err := NewParseBuilder().SetArg(ArgModule, missing).SetArg(ArgInput, "i").SetArg(ArgOutput, "o").Build()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.Run(debugContext(&buf)); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if !strings.Contains(buf.String(), "module descriptor unavailable") {
		t.Errorf("log missing unavailable notice:\n%s", buf.String())
	}
}

func TestRun_SkipsDescriptorBelowDebug(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte("[meta]\nname = \"quiet\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New(&buf, logging.Options{Level: "info"}))
	r, err := NewCompileBuilder().SetArg(ArgModule, dir).SetArg(ArgOutput, "o").Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got:\n%s", buf.String())
	}
}
