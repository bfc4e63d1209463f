package giveaway

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

const (
	// Key prefixes for Redis
	giveawayKeyPrefix       = "giveaway:"
	participantsKeyFormat   = "giveaway:%s:participants"
	winnersKeyFormat        = "giveaway:%s:winners"
	guildGiveawaysKeyFormat = "guild:%s:giveaways"
	runningIndexKey         = "giveaways:running"
)

// Errors returned by the giveaway repository
var (
	// ErrGiveawayNotFound is returned when a giveaway is not found
	ErrGiveawayNotFound = errors.New("giveaway not found")

	// ErrGiveawayEnded is returned when mutating a giveaway that has ended
	ErrGiveawayEnded = errors.New("giveaway has already ended")

	// ErrGiveawayNotEnded is returned when rerolling a running giveaway
	ErrGiveawayNotEnded = errors.New("giveaway has not ended yet")
)

// Script return codes
const (
	scriptNotFound = -1
	scriptEnded    = -2
	scriptConflict = 0
)

// enterScript adds an entrant only while the giveaway is running. ZADD NX
// keeps the participant set duplicate-free; the ended check and the add are
// one atomic step. Returns -1 missing, -2 ended, 0 already entered, 1 added.
var enterScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return -1
end
local g = cjson.decode(raw)
if g.ended then
  return -2
end
return redis.call('ZADD', KEYS[2], 'NX', ARGV[1], ARGV[2])
`)

// endScript flips ended and writes the winners atomically, guarded on the
// current ended flag so a racing double-fire resolves to exactly one winner
// computation. Returns -1 missing, 0 already ended, 1 success.
var endScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return -1
end
local g = cjson.decode(raw)
if g.ended then
  return 0
end
g.ended = true
redis.call('SET', KEYS[1], cjson.encode(g))
redis.call('DEL', KEYS[2])
for i = 2, #ARGV do
  redis.call('RPUSH', KEYS[2], ARGV[i])
end
redis.call('ZREM', KEYS[3], ARGV[1])
return 1
`)

// rerollScript replaces the winners of an ended giveaway.
// Returns -1 missing, 0 not ended, 1 success.
var rerollScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return -1
end
local g = cjson.decode(raw)
if not g.ended then
  return 0
end
redis.call('DEL', KEYS[2])
for i = 1, #ARGV do
  redis.call('RPUSH', KEYS[2], ARGV[i])
end
return 1
`)

// giveawayRecord is the stored row. Participants and winners live in their
// own keys so entry and winner writes never rewrite the whole row.
type giveawayRecord struct {
	ID           string    `json:"id"`
	GuildID      string    `json:"guild_id"`
	ChannelID    string    `json:"channel_id"`
	MessageID    string    `json:"message_id"`
	HostID       string    `json:"host_id"`
	Prize        string    `json:"prize"`
	Winners      int       `json:"winners"`
	RequiredRole string    `json:"required_role,omitempty"`
	EndsAt       time.Time `json:"ends_at"`
	Ended        bool      `json:"ended"`
	CreatedAt    time.Time `json:"created_at"`
}

// Config holds configuration for the Redis giveaway repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used for participant entry ordering
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed giveaway repository
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

// CreateGiveaway persists a new running giveaway
func (r *redisRepository) CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) error {
	if input == nil || input.Giveaway == nil {
		return errors.New("input and giveaway cannot be nil")
	}

	record := toRecord(input.Giveaway)
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal giveaway: %w", err)
	}

	pipe := r.client.Pipeline()

	giveawayKey := giveawayKeyPrefix + input.Giveaway.ID
	pipe.Set(ctx, giveawayKey, recordJSON, 0)

	guildKey := fmt.Sprintf(guildGiveawaysKeyFormat, input.Giveaway.GuildID)
	pipe.ZAdd(ctx, guildKey, redis.Z{
		Score:  float64(input.Giveaway.CreatedAt.UnixNano()),
		Member: input.Giveaway.ID,
	})

	// Register in the due index so the scheduler can discover it
	pipe.ZAdd(ctx, runningIndexKey, redis.Z{
		Score:  float64(input.Giveaway.EndsAt.UnixNano()),
		Member: input.Giveaway.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save giveaway: %w", err)
	}

	return nil
}

// GetGiveaway retrieves a giveaway by ID, including participants and winners
func (r *redisRepository) GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error) {
	if input == nil || input.GiveawayID == "" {
		return nil, errors.New("input and giveaway ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	recordCmd := pipe.Get(ctx, giveawayKeyPrefix+input.GiveawayID)
	participantsCmd := pipe.ZRange(ctx, fmt.Sprintf(participantsKeyFormat, input.GiveawayID), 0, -1)
	winnersCmd := pipe.LRange(ctx, fmt.Sprintf(winnersKeyFormat, input.GiveawayID), 0, -1)

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}

	recordJSON, err := recordCmd.Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGiveawayNotFound
		}
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}

	var record giveawayRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal giveaway: %w", err)
	}

	return fromRecord(&record, participantsCmd.Val(), winnersCmd.Val()), nil
}

// ListGiveaways retrieves all giveaways for a guild, newest first
func (r *redisRepository) ListGiveaways(ctx context.Context, input *ListGiveawaysInput) ([]*models.Giveaway, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	guildKey := fmt.Sprintf(guildGiveawaysKeyFormat, input.GuildID)
	ids, err := r.client.ZRevRange(ctx, guildKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get giveaway IDs: %w", err)
	}

	giveaways := make([]*models.Giveaway, 0, len(ids))
	for _, id := range ids {
		giveaway, err := r.GetGiveaway(ctx, &GetGiveawayInput{GiveawayID: id})
		if err != nil {
			if errors.Is(err, ErrGiveawayNotFound) {
				continue
			}
			return nil, err
		}
		giveaways = append(giveaways, giveaway)
	}

	return giveaways, nil
}

// AddParticipant adds an entrant if the giveaway is still running
func (r *redisRepository) AddParticipant(ctx context.Context, input *AddParticipantInput) (bool, error) {
	if input == nil || input.GiveawayID == "" || input.UserID == "" {
		return false, errors.New("input, giveaway ID and user ID cannot be empty")
	}

	// Entry order is the score; ties at the same nanosecond are harmless
	score := r.clock.Now().UnixNano()

	result, err := enterScript.Run(ctx, r.client,
		[]string{
			giveawayKeyPrefix + input.GiveawayID,
			fmt.Sprintf(participantsKeyFormat, input.GiveawayID),
		},
		score, input.UserID,
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to enter giveaway: %w", err)
	}

	switch result {
	case scriptNotFound:
		return false, ErrGiveawayNotFound
	case scriptEnded:
		return false, ErrGiveawayEnded
	}

	return result == 1, nil
}

// EndGiveaway flips ended and stores the winners in one atomic step
func (r *redisRepository) EndGiveaway(ctx context.Context, input *EndGiveawayInput) error {
	if input == nil || input.GiveawayID == "" {
		return errors.New("input and giveaway ID cannot be empty")
	}

	argv := make([]any, 0, len(input.WinnerIDs)+1)
	argv = append(argv, input.GiveawayID)
	for _, id := range input.WinnerIDs {
		argv = append(argv, id)
	}

	result, err := endScript.Run(ctx, r.client,
		[]string{
			giveawayKeyPrefix + input.GiveawayID,
			fmt.Sprintf(winnersKeyFormat, input.GiveawayID),
			runningIndexKey,
		},
		argv...,
	).Int64()
	if err != nil {
		return fmt.Errorf("failed to end giveaway: %w", err)
	}

	switch result {
	case scriptNotFound:
		return ErrGiveawayNotFound
	case scriptConflict:
		return ErrGiveawayEnded
	}

	return nil
}

// SetWinners replaces the winners of an already-ended giveaway
func (r *redisRepository) SetWinners(ctx context.Context, input *SetWinnersInput) error {
	if input == nil || input.GiveawayID == "" {
		return errors.New("input and giveaway ID cannot be empty")
	}

	argv := make([]any, 0, len(input.WinnerIDs))
	for _, id := range input.WinnerIDs {
		argv = append(argv, id)
	}

	result, err := rerollScript.Run(ctx, r.client,
		[]string{
			giveawayKeyPrefix + input.GiveawayID,
			fmt.Sprintf(winnersKeyFormat, input.GiveawayID),
		},
		argv...,
	).Int64()
	if err != nil {
		return fmt.Errorf("failed to set giveaway winners: %w", err)
	}

	switch result {
	case scriptNotFound:
		return ErrGiveawayNotFound
	case scriptConflict:
		return ErrGiveawayNotEnded
	}

	return nil
}

// ListDue returns IDs of running giveaways whose end time has passed
func (r *redisRepository) ListDue(ctx context.Context, input *ListDueInput) ([]string, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.ZRangeByScore(ctx, runningIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%d", input.Now.UnixNano()),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get due giveaways: %w", err)
	}

	return ids, nil
}

func toRecord(g *models.Giveaway) *giveawayRecord {
	return &giveawayRecord{
		ID:           g.ID,
		GuildID:      g.GuildID,
		ChannelID:    g.ChannelID,
		MessageID:    g.MessageID,
		HostID:       g.HostID,
		Prize:        g.Prize,
		Winners:      g.Winners,
		RequiredRole: g.RequiredRole,
		EndsAt:       g.EndsAt,
		Ended:        g.Ended,
		CreatedAt:    g.CreatedAt,
	}
}

func fromRecord(r *giveawayRecord, participants, winners []string) *models.Giveaway {
	return &models.Giveaway{
		ID:           r.ID,
		GuildID:      r.GuildID,
		ChannelID:    r.ChannelID,
		MessageID:    r.MessageID,
		HostID:       r.HostID,
		Prize:        r.Prize,
		Winners:      r.Winners,
		RequiredRole: r.RequiredRole,
		EndsAt:       r.EndsAt,
		Ended:        r.Ended,
		WinnerIDs:    winners,
		Participants: participants,
		CreatedAt:    r.CreatedAt,
	}
}
