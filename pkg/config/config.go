package config

import (
	"log/slog"
	"strings"
)

// Config holds the textutils command line settings.
type Config struct {
	// Env selects logger defaults: development, staging or production.
	Env string `env:"TEXTUTILS_ENV" envDefault:"development"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"TEXTUTILS_LOG_LEVEL" envDefault:"info"`
	// LogFormat is text or json.
	LogFormat string `env:"TEXTUTILS_LOG_FORMAT" envDefault:"text"`
	// Profiles is an optional path to a YAML file with named sanitize profiles.
	Profiles string `env:"TEXTUTILS_PROFILES"`
}

// SlogLevel converts LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, ErrInvalidLogLevel
	}
	return level, nil
}
