package config

import (
	"mentalmath/internal/drill"
	"mentalmath/internal/journal"
	"mentalmath/internal/spec"
)

const (
	CurrentVersion   = 1
	DefaultRuns      = 1
	DefaultSteps     = 5
	DefaultDigits    = 2
	DefaultOperation = drill.OperationBoth
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default returns a config populated with every default value.
func Default() spec.Config {
	cfg := spec.Config{Version: CurrentVersion}
	Normalize(&cfg)
	return cfg
}

func defaultLogFile() string {
	return journal.DefaultPath
}
