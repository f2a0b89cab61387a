package config

import (
	"strings"

	"mentalmath/internal/drill"
	"mentalmath/internal/spec"
)

// Normalize trims string fields, canonicalizes the operation name and fills
// zero values with defaults. Steps is only defaulted when unset, so an
// explicit zero is kept. Unknown operations are left for Validate.
func Normalize(cfg *spec.Config) {
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile()
	}
	if cfg.Runs == 0 {
		cfg.Runs = DefaultRuns
	}
	if cfg.Steps == nil {
		steps := DefaultSteps
		cfg.Steps = &steps
	}
	if cfg.Digits == 0 {
		cfg.Digits = DefaultDigits
	}

	cfg.Operation = strings.TrimSpace(cfg.Operation)
	if cfg.Operation == "" {
		cfg.Operation = string(DefaultOperation)
	} else if op, err := drill.ParseOperation(cfg.Operation); err == nil {
		cfg.Operation = string(op)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
}
