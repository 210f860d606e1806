// Package config loads process configuration from the environment and
// lineups from YAML files
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/dino-battle/internal/engine/combat"
	"github.com/KirkDiggler/dino-battle/internal/errors"
)

// Config is the environment configuration shared by every command
type Config struct {
	LogLevel        string        `env:"DINOBATTLE_LOG_LEVEL" envDefault:"warn"`
	MaxRounds       int           `env:"DINOBATTLE_MAX_ROUNDS"`
	Seed            int64         `env:"DINOBATTLE_SEED"`
	RedisAddr       string        `env:"DINOBATTLE_REDIS_ADDR"`
	RedisPoolSize   int           `env:"DINOBATTLE_REDIS_POOL_SIZE" envDefault:"10"`
	RedisTLS        bool          `env:"DINOBATTLE_REDIS_TLS"`
	HTTPAddr        string        `env:"DINOBATTLE_HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"DINOBATTLE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{MaxRounds: combat.DefaultMaxRounds}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MaxRounds < 0 {
		vb.Fieldf("MaxRounds", "must not be negative, got %d", c.MaxRounds)
	}
	if c.RedisPoolSize < 0 {
		vb.Fieldf("RedisPoolSize", "must not be negative, got %d", c.RedisPoolSize)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Field("LogLevel", err.Error())
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, falling back to warn
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, errors.InvalidArgumentf("unknown log level %q", s)
	}
}
