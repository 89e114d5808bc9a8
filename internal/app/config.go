package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string
	OutputPath string

	// Format overrides extension-based input format detection when set.
	// One of "hcl", "json", "yaml" or "toml".
	Format string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
