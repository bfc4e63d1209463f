package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

const (
	// Key prefixes for Redis
	warnKeyPrefix      = "warn:"
	userWarnsKeyFormat = "guild:%s:user:%s:warns"
	guildXPKeyFormat   = "guild:%s:xp"

	// defaultLeaderboardLimit caps leaderboard reads when no limit is given
	defaultLeaderboardLimit = 10
)

// Config holds configuration for the Redis member repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed member repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddWarn persists a new warning against a member
func (r *redisRepository) AddWarn(ctx context.Context, input *AddWarnInput) error {
	if input == nil || input.Warn == nil {
		return errors.New("input and warn cannot be nil")
	}

	warnJSON, err := json.Marshal(input.Warn)
	if err != nil {
		return fmt.Errorf("failed to marshal warn: %w", err)
	}

	pipe := r.client.Pipeline()

	warnKey := warnKeyPrefix + input.Warn.ID
	pipe.Set(ctx, warnKey, warnJSON, 0)

	userKey := fmt.Sprintf(userWarnsKeyFormat, input.Warn.GuildID, input.Warn.UserID)
	pipe.ZAdd(ctx, userKey, redis.Z{
		Score:  float64(input.Warn.CreatedAt.UnixNano()),
		Member: input.Warn.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save warn: %w", err)
	}

	return nil
}

// ListWarns retrieves a member's warnings, newest first
func (r *redisRepository) ListWarns(ctx context.Context, input *ListWarnsInput) ([]*models.Warn, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID, and user ID cannot be empty")
	}

	userKey := fmt.Sprintf(userWarnsKeyFormat, input.GuildID, input.UserID)
	warnIDs, err := r.client.ZRevRange(ctx, userKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get warn IDs: %w", err)
	}

	warns := make([]*models.Warn, 0, len(warnIDs))
	for _, warnID := range warnIDs {
		warnJSON, err := r.client.Get(ctx, warnKeyPrefix+warnID).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get warn %s: %w", warnID, err)
		}

		var warn models.Warn
		if err := json.Unmarshal([]byte(warnJSON), &warn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal warn %s: %w", warnID, err)
		}

		warns = append(warns, &warn)
	}

	return warns, nil
}

// AddXP increments a member's XP and returns the new total
func (r *redisRepository) AddXP(ctx context.Context, input *AddXPInput) (int64, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return 0, errors.New("input, guild ID, and user ID cannot be empty")
	}

	guildKey := fmt.Sprintf(guildXPKeyFormat, input.GuildID)
	total, err := r.client.ZIncrBy(ctx, guildKey, float64(input.Amount), input.UserID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment XP: %w", err)
	}

	return int64(total), nil
}

// Leaderboard retrieves the top members of a guild by XP, highest first
func (r *redisRepository) Leaderboard(ctx context.Context, input *LeaderboardInput) ([]*models.XPEntry, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	guildKey := fmt.Sprintf(guildXPKeyFormat, input.GuildID)
	rows, err := r.client.ZRevRangeWithScores(ctx, guildKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]*models.XPEntry, 0, len(rows))
	for _, row := range rows {
		userID, ok := row.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected leaderboard member type %T", row.Member)
		}

		entries = append(entries, &models.XPEntry{
			UserID: userID,
			XP:     int64(row.Score),
		})
	}

	return entries, nil
}
