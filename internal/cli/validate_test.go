package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mentalmath/internal/config"
)

func TestValidateCommandOK(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "drill.yml")
	if err := os.WriteFile(specPath, []byte("version: 1\nruns: 2\n"), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--spec", specPath}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("expected OK output, got %q", out.String())
	}
}

func TestValidateCommandDiscoversConfig(t *testing.T) {
	dir := t.TempDir()
	if err := config.Scaffold(config.ConfigPath(dir), config.ScaffoldOptions{}); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	nested := filepath.Join(dir, "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(nested)

	var out, errOut bytes.Buffer
	if code := Run([]string{"validate"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
}

func TestValidateCommandReportsIssues(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "drill.yml")
	if err := os.WriteFile(specPath, []byte("version: 1\ndigits: -2\noperation: divide\n"), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--spec", specPath}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, field := range []string{"digits", "operation"} {
		if !strings.Contains(errOut.String(), field) {
			t.Fatalf("expected %s issue, got %q", field, errOut.String())
		}
	}
}

func TestValidateCommandRejectsExtraArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"validate", "extra"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
