package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server configuration, loaded from the environment
type Config struct {
	// HTTPAddr is the listen address of the API server
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// RedisAddr is the Redis host:port
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the Redis password, empty for none
	RedisPassword string `env:"REDIS_PASSWORD"`

	// DiscordClientID is the Discord application client ID
	DiscordClientID string `env:"DISCORD_CLIENT_ID,required"`

	// DiscordClientSecret is the Discord application client secret
	DiscordClientSecret string `env:"DISCORD_CLIENT_SECRET,required"`

	// DiscordRedirectURI is the OAuth callback URL
	DiscordRedirectURI string `env:"DISCORD_REDIRECT_URI,required"`

	// WebURL is the dashboard frontend origin, used for post-login redirects
	WebURL string `env:"WEB_URL" envDefault:"http://localhost:5173"`

	// BotAPIKey authenticates the bot process on the relay endpoints
	BotAPIKey string `env:"BOT_API_KEY,required"`

	// SessionTTL is how long dashboard sessions stay valid
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// SchedulerInterval is how often the background sweep runs
	SchedulerInterval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"30s"`

	// EventBufferSize is the per-connection event buffer
	EventBufferSize int `env:"EVENT_BUFFER_SIZE" envDefault:"256"`

	// RelayCapacity is the maximum number of queued bot actions
	RelayCapacity int `env:"RELAY_CAPACITY" envDefault:"512"`
}

// Load reads configuration from the environment. A .env file is applied
// first when present, without overriding variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
