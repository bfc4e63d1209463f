package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) setRequired() {
	s.T().Setenv("DISCORD_CLIENT_ID", "client-id")
	s.T().Setenv("DISCORD_CLIENT_SECRET", "client-secret")
	s.T().Setenv("DISCORD_REDIRECT_URI", "http://localhost:8080/api/v1/auth/callback")
	s.T().Setenv("BOT_API_KEY", "bot-key")
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	s.setRequired()

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(":8080", cfg.HTTPAddr)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(30*time.Second, cfg.SchedulerInterval)
	s.Equal(168*time.Hour, cfg.SessionTTL)
	s.Equal(256, cfg.EventBufferSize)
}

func (s *ConfigTestSuite) TestLoadOverrides() {
	s.setRequired()
	s.T().Setenv("HTTP_ADDR", ":9999")
	s.T().Setenv("SCHEDULER_INTERVAL", "10s")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(":9999", cfg.HTTPAddr)
	s.Equal(10*time.Second, cfg.SchedulerInterval)
}

func (s *ConfigTestSuite) TestLoadMissingRequired() {
	s.T().Setenv("DISCORD_CLIENT_ID", "client-id")

	_, err := Load()
	s.Require().Error(err)
}
