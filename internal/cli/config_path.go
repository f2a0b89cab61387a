package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"mentalmath/internal/config"
	"mentalmath/internal/spec"
)

// resolveSpecPath normalizes a config path or finds it from CWD.
func resolveSpecPath(specPath string) (string, error) {
	if strings.TrimSpace(specPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(specPath)
	if err != nil {
		return "", fmt.Errorf("resolve spec path: %w", err)
	}
	return abs, nil
}

// loadRunConfig loads an explicit config, a discovered one, or the defaults
// when no --spec was given and none exists. The returned path is empty when
// defaults were used.
func loadRunConfig(specPath string) (spec.Config, string, error) {
	explicit := strings.TrimSpace(specPath) != ""
	resolved, err := resolveSpecPath(specPath)
	if err != nil {
		if !explicit && errors.Is(err, config.ErrConfigNotFound) {
			return config.Default(), "", nil
		}
		return spec.Config{}, "", err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return spec.Config{}, "", err
	}
	return cfg, resolved, nil
}
