package spec

// Config is the on-disk drill configuration. Zero values fall back to the
// defaults applied by config.Normalize. Steps is a pointer because zero
// steps is a valid drill; only an absent value takes the default.
type Config struct {
	Version   int    `yaml:"version" json:"version" hcl:"version,optional"`
	LogFile   string `yaml:"log_file" json:"log_file" hcl:"log_file,optional"`
	Runs      int    `yaml:"runs" json:"runs" hcl:"runs,optional"`
	Steps     *int   `yaml:"steps" json:"steps" hcl:"steps,optional"`
	Digits    int    `yaml:"digits" json:"digits" hcl:"digits,optional"`
	Operation string `yaml:"operation" json:"operation" hcl:"operation,optional"`
	Seed      uint64 `yaml:"seed" json:"seed" hcl:"seed,optional"`
	NoColor   bool   `yaml:"no_color" json:"no_color" hcl:"no_color,optional"`
	LogLevel  string `yaml:"log_level" json:"log_level" hcl:"log_level,optional"`
	LogFormat string `yaml:"log_format" json:"log_format" hcl:"log_format,optional"`
}

// StepCount returns the configured step count, or 0 when unset.
func (c Config) StepCount() int {
	if c.Steps == nil {
		return 0
	}
	return *c.Steps
}
