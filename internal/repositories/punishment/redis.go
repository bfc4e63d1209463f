package punishment

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
	punishmentKeyPrefix       = "punishment:"
	guildPunishmentsKeyFormat = "guild:%s:punishments"
	expiryIndexKey            = "punishments:expiry"
)

// ErrPunishmentNotFound is returned when a punishment is not found
var ErrPunishmentNotFound = errors.New("punishment not found")

// Config holds configuration for the Redis punishment repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed punishment repository
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

// CreatePunishment persists a new temporary punishment
func (r *redisRepository) CreatePunishment(ctx context.Context, input *CreatePunishmentInput) error {
	if input == nil || input.Punishment == nil {
		return errors.New("input and punishment cannot be nil")
	}

	punishmentJSON, err := json.Marshal(input.Punishment)
	if err != nil {
		return fmt.Errorf("failed to marshal punishment: %w", err)
	}

	pipe := r.client.Pipeline()

	punishmentKey := punishmentKeyPrefix + input.Punishment.ID
	pipe.Set(ctx, punishmentKey, punishmentJSON, 0)

	guildKey := fmt.Sprintf(guildPunishmentsKeyFormat, input.Punishment.GuildID)
	pipe.ZAdd(ctx, guildKey, redis.Z{
		Score:  float64(input.Punishment.ExpiresAt.UnixNano()),
		Member: input.Punishment.ID,
	})

	pipe.ZAdd(ctx, expiryIndexKey, redis.Z{
		Score:  float64(input.Punishment.ExpiresAt.UnixNano()),
		Member: input.Punishment.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save punishment: %w", err)
	}

	return nil
}

// ListPunishments retrieves all active punishments for a guild, soonest
// expiry first
func (r *redisRepository) ListPunishments(ctx context.Context, input *ListPunishmentsInput) ([]*models.TempPunishment, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	guildKey := fmt.Sprintf(guildPunishmentsKeyFormat, input.GuildID)
	ids, err := r.client.ZRange(ctx, guildKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get punishment IDs: %w", err)
	}

	return r.fetch(ctx, ids)
}

// DeleteExpired removes all punishments whose expiry has passed and returns
// them
func (r *redisRepository) DeleteExpired(ctx context.Context, input *DeleteExpiredInput) ([]*models.TempPunishment, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.ZRangeByScore(ctx, expiryIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%d", input.Now.UnixNano()),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get expired punishments: %w", err)
	}

	if len(ids) == 0 {
		return []*models.TempPunishment{}, nil
	}

	expired, err := r.fetch(ctx, ids)
	if err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	for _, p := range expired {
		pipe.Del(ctx, punishmentKeyPrefix+p.ID)
		pipe.ZRem(ctx, fmt.Sprintf(guildPunishmentsKeyFormat, p.GuildID), p.ID)
		pipe.ZRem(ctx, expiryIndexKey, p.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete expired punishments: %w", err)
	}

	return expired, nil
}

func (r *redisRepository) fetch(ctx context.Context, ids []string) ([]*models.TempPunishment, error) {
	if len(ids) == 0 {
		return []*models.TempPunishment{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(ids))
	for _, id := range ids {
		commands = append(commands, pipe.Get(ctx, punishmentKeyPrefix+id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get punishments: %w", err)
	}

	punishments := make([]*models.TempPunishment, 0, len(ids))
	for i, cmd := range commands {
		punishmentJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Row removed between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to get punishment %s: %w", ids[i], err)
		}

		var punishment models.TempPunishment
		if err := json.Unmarshal([]byte(punishmentJSON), &punishment); err != nil {
			return nil, fmt.Errorf("failed to unmarshal punishment %s: %w", ids[i], err)
		}

		punishments = append(punishments, &punishment)
	}

	return punishments, nil
}
