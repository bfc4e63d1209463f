package reminder

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
	reminderKeyPrefix      = "reminder:"
	userRemindersKeyFormat = "user:%s:reminders"
	dueIndexKey            = "reminders:due"
)

// ErrReminderNotFound is returned when a reminder is not found
var ErrReminderNotFound = errors.New("reminder not found")

// Config holds configuration for the Redis reminder repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed reminder repository
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

// CreateReminder persists a new pending reminder
func (r *redisRepository) CreateReminder(ctx context.Context, input *CreateReminderInput) error {
	if input == nil || input.Reminder == nil {
		return errors.New("input and reminder cannot be nil")
	}

	reminderJSON, err := json.Marshal(input.Reminder)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}

	pipe := r.client.Pipeline()

	reminderKey := reminderKeyPrefix + input.Reminder.ID
	pipe.Set(ctx, reminderKey, reminderJSON, 0)

	userKey := fmt.Sprintf(userRemindersKeyFormat, input.Reminder.UserID)
	pipe.ZAdd(ctx, userKey, redis.Z{
		Score:  float64(input.Reminder.RemindAt.UnixNano()),
		Member: input.Reminder.ID,
	})

	pipe.ZAdd(ctx, dueIndexKey, redis.Z{
		Score:  float64(input.Reminder.RemindAt.UnixNano()),
		Member: input.Reminder.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save reminder: %w", err)
	}

	return nil
}

// ListReminders retrieves all pending reminders for a user, soonest first
func (r *redisRepository) ListReminders(ctx context.Context, input *ListRemindersInput) ([]*models.Reminder, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf(userRemindersKeyFormat, input.UserID)
	ids, err := r.client.ZRange(ctx, userKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder IDs: %w", err)
	}

	return r.fetch(ctx, ids)
}

// ClaimDue removes all reminders whose due time has passed and returns them
func (r *redisRepository) ClaimDue(ctx context.Context, input *ClaimDueInput) ([]*models.Reminder, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.ZRangeByScore(ctx, dueIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%d", input.Now.UnixNano()),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get due reminders: %w", err)
	}

	if len(ids) == 0 {
		return []*models.Reminder{}, nil
	}

	due, err := r.fetch(ctx, ids)
	if err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	for _, rem := range due {
		pipe.Del(ctx, reminderKeyPrefix+rem.ID)
		pipe.ZRem(ctx, fmt.Sprintf(userRemindersKeyFormat, rem.UserID), rem.ID)
		pipe.ZRem(ctx, dueIndexKey, rem.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete due reminders: %w", err)
	}

	return due, nil
}

func (r *redisRepository) fetch(ctx context.Context, ids []string) ([]*models.Reminder, error) {
	if len(ids) == 0 {
		return []*models.Reminder{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(ids))
	for _, id := range ids {
		commands = append(commands, pipe.Get(ctx, reminderKeyPrefix+id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}

	reminders := make([]*models.Reminder, 0, len(ids))
	for i, cmd := range commands {
		reminderJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Row removed between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to get reminder %s: %w", ids[i], err)
		}

		var reminder models.Reminder
		if err := json.Unmarshal([]byte(reminderJSON), &reminder); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reminder %s: %w", ids[i], err)
		}

		reminders = append(reminders, &reminder)
	}

	return reminders, nil
}
