package config

import (
	"os"
	"path/filepath"
	"testing"

	"mentalmath/internal/spec"
)

// validConfig returns a normalized config used by validation tests.
func validConfig() spec.Config {
	return spec.Config{
		Version:   1,
		LogFile:   "Mental Math.txt",
		Runs:      5,
		Steps:     intPtr(5),
		Digits:    1,
		Operation: "both",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func intPtr(v int) *int {
	return &v
}
