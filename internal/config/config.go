// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/cincodedos/internal/entity"
	"github.com/samdwyer/cincodedos/internal/logger"
)

// Config holds everything the binary reads from the environment.
type Config struct {
	Seed       int64  `env:"CINCODEDOS_SEED"`
	PlayerName string `env:"CINCODEDOS_PLAYER_NAME" envDefault:"Viajante"`
	Class      string `env:"CINCODEDOS_CLASS"       envDefault:"knight"`

	LogLevel  string `env:"CINCODEDOS_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"CINCODEDOS_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"CINCODEDOS_LOG_FILE"   envDefault:"cincodedos.log"`

	Telemetry        bool   `env:"CINCODEDOS_TELEMETRY"`
	HoneycombAPIKey  string `env:"HONEYCOMB_CINCODEDOS_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_CINCODEDOS_DATASET" envDefault:"cincodedos"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// PlayerClass resolves the configured class name.
func (c Config) PlayerClass() (entity.Class, error) {
	return entity.ParseClass(c.Class)
}

// LoggerOptions returns the logger settings.
func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		File:   c.LogFile,
	}
}

// HoneycombHeaders returns the OTLP headers value for Honeycomb, or "" when
// no API key is set.
func (c Config) HoneycombHeaders() string {
	if c.HoneycombAPIKey == "" {
		return ""
	}
	return fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", c.HoneycombAPIKey, c.HoneycombDataset)
}
