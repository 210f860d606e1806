package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dino-battle/internal/config"
	"github.com/KirkDiggler/dino-battle/internal/engine/combat"
	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal("warn", cfg.LogLevel)
	s.Equal(slog.LevelWarn, cfg.SlogLevel())
	s.Equal(combat.DefaultMaxRounds, cfg.MaxRounds)
	s.Equal(":8080", cfg.HTTPAddr)
	s.Equal(10*time.Second, cfg.ShutdownTimeout)
	s.Empty(cfg.RedisAddr)
}

func (s *ConfigTestSuite) TestLoadFromEnv() {
	s.T().Setenv("DINOBATTLE_LOG_LEVEL", "debug")
	s.T().Setenv("DINOBATTLE_MAX_ROUNDS", "0")
	s.T().Setenv("DINOBATTLE_SEED", "99")
	s.T().Setenv("DINOBATTLE_REDIS_ADDR", "localhost:6379")
	s.T().Setenv("DINOBATTLE_HTTP_ADDR", "127.0.0.1:9000")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(slog.LevelDebug, cfg.SlogLevel())
	s.Equal(0, cfg.MaxRounds)
	s.Equal(int64(99), cfg.Seed)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal("127.0.0.1:9000", cfg.HTTPAddr)
}

func (s *ConfigTestSuite) TestLoadRejectsBadValues() {
	s.Run("negative max rounds", func() {
		s.T().Setenv("DINOBATTLE_MAX_ROUNDS", "-1")
		_, err := config.Load()
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unparseable number", func() {
		s.T().Setenv("DINOBATTLE_MAX_ROUNDS", "lots")
		_, err := config.Load()
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown log level", func() {
		s.T().Setenv("DINOBATTLE_LOG_LEVEL", "chatty")
		_, err := config.Load()
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ConfigTestSuite) TestParseLevel() {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			level, err := config.ParseLevel(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, level)
		})
	}
}

func (s *ConfigTestSuite) writeFile(content string) string {
	path := filepath.Join(s.T().TempDir(), "roster.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestLoadRosterFile() {
	path := s.writeFile("name: Big Teeth\nspecies:\n  - tyrannosaurus\n  - Pteranodon\n")

	rf, err := config.LoadRosterFile(path)
	s.Require().NoError(err)
	s.Equal("Big Teeth", rf.Name)
	s.Equal([]dino.Species{dino.Tyrannosaurus, dino.Pteranodon}, rf.Species)
}

func (s *ConfigTestSuite) TestLoadRosterFileErrors() {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "unknown species", content: "name: x\nspecies: [stegosaurus]\n"},
		{name: "too many", content: "name: x\nspecies: [pteranodon, pteranodon, pteranodon, pteranodon, pteranodon, pteranodon, pteranodon, pteranodon, pteranodon]\n"},
		{name: "bad yaml", content: "name: [unterminated\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.LoadRosterFile(s.writeFile(tc.content))
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}

	_, err := config.LoadRosterFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.True(errors.IsNotFound(err))
}
