package config

import (
	"fmt"
	"strings"

	"mentalmath/internal/drill"
	"mentalmath/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != CurrentVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if strings.TrimSpace(cfg.LogFile) == "" {
		collector.add("log_file", "is required")
	}
	if cfg.Runs < 1 {
		collector.add("runs", "must be >= 1")
	}
	if cfg.StepCount() < 0 {
		collector.add("steps", "must be >= 0")
	}
	if cfg.Digits < 1 || cfg.Digits > drill.MaxDigits {
		collector.add("digits", fmt.Sprintf("must be between 1 and %d", drill.MaxDigits))
	}
	if !drill.Operation(cfg.Operation).Valid() {
		collector.add("operation", fmt.Sprintf("unsupported operation %q (expected add|subtract|both)", cfg.Operation))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		collector.add("log_level", fmt.Sprintf("unsupported level %q", cfg.LogLevel))
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		collector.add("log_format", fmt.Sprintf("unsupported format %q", cfg.LogFormat))
	}

	return collector.result()
}
