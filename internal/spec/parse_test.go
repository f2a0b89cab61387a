package spec

import "testing"

// TestParseConfigValid verifies valid config parsing succeeds.
func TestParseConfigValid(t *testing.T) {
	data := []byte(`version: 1
log_file: "Mental Math.txt"
runs: 5
steps: 5
digits: 1
operation: both
seed: 42
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Runs != 5 || cfg.Digits != 1 || cfg.Operation != "both" || cfg.Seed != 42 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LogFile != "Mental Math.txt" {
		t.Fatalf("unexpected log file %q", cfg.LogFile)
	}
}

// TestParseConfigUnknownField verifies unknown fields are rejected.
func TestParseConfigUnknownField(t *testing.T) {
	data := []byte(`version: 1
frequency: 5
`)
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseConfigRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseConfigRejectsMultipleDocs(t *testing.T) {
	data := []byte("version: 1\n---\nversion: 1\n")
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for multiple documents")
	}
}

func TestParseConfigRejectsEmpty(t *testing.T) {
	if _, err := ParseConfig(nil); err == nil {
		t.Fatalf("expected parse error for empty document")
	}
}

func TestParseConfigJSON(t *testing.T) {
	data := []byte(`{"version": 1, "runs": 3, "operation": "add"}`)
	cfg, err := ParseConfigFile("drill.json", data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Runs != 3 || cfg.Operation != "add" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if _, err := ParseConfigJSON([]byte(`{"version": 1, "extra": true}`)); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

func TestParseConfigHCL(t *testing.T) {
	data := []byte(`
version   = 1
log_file  = "drills.txt"
runs      = 2
steps     = 4
digits    = 3
operation = "subtract"
no_color  = true
`)
	cfg, err := ParseConfigFile("/tmp/drill.hcl", data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Version != 1 || cfg.LogFile != "drills.txt" || cfg.Runs != 2 || cfg.StepCount() != 4 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Digits != 3 || cfg.Operation != "subtract" || !cfg.NoColor {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseConfigHCLUnknownAttribute(t *testing.T) {
	data := []byte("version = 1\nfrequency = 5\n")
	if _, err := ParseConfigHCL("drill.hcl", data); err == nil {
		t.Fatalf("expected parse error for unknown attribute")
	}
}

func TestParseConfigFileDefaultsToYAML(t *testing.T) {
	cfg, err := ParseConfigFile("config.yml", []byte("version: 1\nsteps: 7\n"))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.StepCount() != 7 {
		t.Fatalf("expected steps 7, got %d", cfg.StepCount())
	}
}

func TestParseConfigKeepsExplicitZeroSteps(t *testing.T) {
	cfg, err := ParseConfig([]byte("version: 1\nsteps: 0\n"))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Steps == nil || *cfg.Steps != 0 {
		t.Fatalf("expected explicit zero steps, got %v", cfg.Steps)
	}

	cfg, err = ParseConfig([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Steps != nil {
		t.Fatalf("expected unset steps, got %d", *cfg.Steps)
	}
}

func TestParseConfigLargeSeed(t *testing.T) {
	cfg, err := ParseConfig([]byte("version: 1\nseed: 18446744073709551615\n"))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Seed != 18446744073709551615 {
		t.Fatalf("unexpected seed %d", cfg.Seed)
	}
	if _, err := ParseConfig([]byte("version: 1\nseed: -1\n")); err == nil {
		t.Fatalf("expected parse error for negative seed")
	}
}
