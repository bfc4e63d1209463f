package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/models"
)

// Key prefix for Redis
const sessionKeyPrefix = "session:"

// Errors returned by the session repository
var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a session is past its expiry.
	// Callers treat this the same as not-found; the distinction exists for
	// observability.
	ErrSessionExpired = errors.New("session expired")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used for expiry checks
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  c,
	}, nil
}

// CreateSession persists a new session. The row carries a Redis TTL as an
// eviction backstop, but validity is always decided against ExpiresAt on
// lookup.
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.Token == "" {
		return errors.New("session token cannot be empty")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := input.Session.ExpiresAt.Sub(r.clock.Now())
	if ttl <= 0 {
		return errors.New("session expiry must be in the future")
	}

	sessionKey := sessionKeyPrefix + input.Session.Token
	if err := r.client.Set(ctx, sessionKey, sessionJSON, ttl+time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by token, purging it if expired
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.Token == "" {
		return nil, errors.New("input and token cannot be empty")
	}

	sessionKey := sessionKeyPrefix + input.Token
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if !session.Valid(r.clock.Now()) {
		// Purge within the same lookup that discovered the expiry
		if err := r.client.Del(ctx, sessionKey).Err(); err != nil {
			return nil, fmt.Errorf("failed to purge expired session: %w", err)
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// DeleteSession removes a session. Deleting an absent token is a no-op.
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.Token == "" {
		return errors.New("input and token cannot be empty")
	}

	if err := r.client.Del(ctx, sessionKeyPrefix+input.Token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
