// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Config is decoded from CRIBBAGE_* environment variables
type Config struct {
	Addr           string `env:"CRIBBAGE_ADDR,default=:8000"`
	Seed           int64  `env:"CRIBBAGE_SEED,default=0"`
	LogLevel       string `env:"CRIBBAGE_LOG_LEVEL,default=info"`
	AllowedOrigins string `env:"CRIBBAGE_ALLOWED_ORIGINS,default=*"`
}

// Load reads the environment, falling back to defaults
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}

	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// Origins splits AllowedOrigins on commas
func (c Config) Origins() []string {
	origins := []string{}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
