package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScaffoldRuns is the run count written when none is chosen.
const ScaffoldRuns = 5

// Starter drill shape: five single-digit steps.
const (
	scaffoldSteps  = 5
	scaffoldDigits = 1
)

// ScaffoldOptions customizes the starter config.
type ScaffoldOptions struct {
	LogFile string
	Runs    int
}

// Scaffold writes a starter config to specPath, refusing to overwrite.
func Scaffold(specPath string, opts ScaffoldOptions) error {
	if specPath == "" {
		return fmt.Errorf("spec path is required")
	}
	if info, err := os.Stat(specPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("spec path %q is a directory", specPath)
		}
		return fmt.Errorf("spec file already exists at %q", specPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat spec file: %w", err)
	}

	opts.LogFile = strings.TrimSpace(opts.LogFile)
	if opts.LogFile == "" {
		opts.LogFile = defaultLogFile()
	}
	if opts.Runs < 1 {
		opts.Runs = ScaffoldRuns
	}
	content, err := renderScaffoldConfig(opts)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(specPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(specPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write spec file: %w", err)
	}
	return nil
}
