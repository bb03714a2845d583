package app

import (
	"fmt"
	"log/slog"
	"strings"

	"training.pl/textcli/internal/common"
)

// Default values for the global flags.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = common.LogFormatText
)

// Config holds the process-wide settings taken from the global flags.
type Config struct {
	LogLevel  string
	LogFormat string
	NoColor   bool
}

// NewConfig fills in defaults, normalizes and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting as a usage error.
func (c *Config) Validate() error {
	if _, err := common.ParseLogLevel(c.LogLevel); err != nil {
		return common.NewUsageError(err.Error())
	}
	switch c.LogFormat {
	case common.LogFormatText, common.LogFormatJSON:
	default:
		return common.NewUsageError(fmt.Sprintf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat))
	}
	return nil
}

// Level returns the parsed log level, falling back to the default on error.
func (c *Config) Level() slog.Level {
	level, err := common.ParseLogLevel(c.LogLevel)
	if err != nil {
		level, _ = common.ParseLogLevel(DefaultLogLevel)
	}
	return level
}
