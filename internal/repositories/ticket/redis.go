package ticket

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
	ticketKeyPrefix       = "ticket:"
	guildTicketsKeyFormat = "guild:%s:tickets"
	counterKeyFormat      = "guild:%s:ticket_counter"

	// timeLayout matches encoding/json's time.Time representation so
	// timestamps written from Lua parse back identically
	timeLayout = time.RFC3339Nano

	// Return codes shared by the conditional-update scripts
	scriptNotFound = -1
	scriptConflict = 0
)

// parseScriptResult unpacks the {code, detail} pair the scripts return
func parseScriptResult(result any) (int64, string, error) {
	pair, ok := result.([]any)
	if !ok || len(pair) != 2 {
		return 0, "", fmt.Errorf("unexpected script result: %v", result)
	}

	code, ok := pair[0].(int64)
	if !ok {
		return 0, "", fmt.Errorf("unexpected script result code: %v", pair[0])
	}

	detail, _ := pair[1].(string)
	return code, detail, nil
}

// ErrTicketNotFound is returned when a ticket is not found
var ErrTicketNotFound = errors.New("ticket not found")

// ErrTicketNotOpen is returned when closing a ticket that is not open
var ErrTicketNotOpen = errors.New("ticket is not open")

// AlreadyClaimedError is returned when a claim loses to an earlier claimer
type AlreadyClaimedError struct {
	// ClaimedBy is the user currently holding the claim
	ClaimedBy string
}

// Error implements the error interface
func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("ticket already claimed by %s", e.ClaimedBy)
}

// claimScript sets claimed_by only if the ticket exists and is unclaimed.
// Returns {-1} when missing, {0, current claimer} on conflict, and
// {1, updated row} on success. Running as a script makes the check and the
// write a single atomic step, so two racing claimers cannot both win.
var claimScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return {-1, ''}
end
local t = cjson.decode(raw)
if t.claimed_by and t.claimed_by ~= '' then
  return {0, t.claimed_by}
end
t.claimed_by = ARGV[1]
t.last_activity = ARGV[2]
local updated = cjson.encode(t)
redis.call('SET', KEYS[1], updated)
return {1, updated}
`)

// closeScript transitions status open -> closed. Returns {-1} when missing,
// {0, current status} on conflict, {1, updated row} on success.
var closeScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return {-1, ''}
end
local t = cjson.decode(raw)
if t.status ~= 'open' then
  return {0, t.status}
end
t.status = 'closed'
t.closed_by = ARGV[1]
t.closed_at = ARGV[2]
t.last_activity = ARGV[2]
local updated = cjson.encode(t)
redis.call('SET', KEYS[1], updated)
return {1, updated}
`)

// priorityScript rewrites the priority field. There is no state predicate,
// but the read-modify-write still has to be atomic against a concurrent
// claim or close on the same row.
var priorityScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return {-1, ''}
end
local t = cjson.decode(raw)
t.priority = ARGV[1]
t.last_activity = ARGV[2]
local updated = cjson.encode(t)
redis.call('SET', KEYS[1], updated)
return {1, updated}
`)

// Config holds configuration for the Redis ticket repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used for last-activity timestamps
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed ticket repository
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

// AllocateNumber atomically increments the guild's ticket counter and
// returns the new value
func (r *redisRepository) AllocateNumber(ctx context.Context, input *AllocateNumberInput) (int64, error) {
	if input == nil || input.GuildID == "" {
		return 0, errors.New("input and guild ID cannot be empty")
	}

	counterKey := fmt.Sprintf(counterKeyFormat, input.GuildID)
	number, err := r.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate ticket number: %w", err)
	}

	return number, nil
}

// CreateTicket persists a new ticket
func (r *redisRepository) CreateTicket(ctx context.Context, input *CreateTicketInput) error {
	if input == nil || input.Ticket == nil {
		return errors.New("input and ticket cannot be nil")
	}

	ticketJSON, err := json.Marshal(input.Ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}

	pipe := r.client.Pipeline()

	ticketKey := ticketKeyPrefix + input.Ticket.ID
	pipe.Set(ctx, ticketKey, ticketJSON, 0)

	guildKey := fmt.Sprintf(guildTicketsKeyFormat, input.Ticket.GuildID)
	pipe.ZAdd(ctx, guildKey, redis.Z{
		Score:  float64(input.Ticket.CreatedAt.UnixNano()),
		Member: input.Ticket.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return nil
}

// GetTicket retrieves a ticket by ID from Redis
func (r *redisRepository) GetTicket(ctx context.Context, input *GetTicketInput) (*models.Ticket, error) {
	if input == nil || input.TicketID == "" {
		return nil, errors.New("input and ticket ID cannot be empty")
	}

	ticketKey := ticketKeyPrefix + input.TicketID
	ticketJSON, err := r.client.Get(ctx, ticketKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	var ticket models.Ticket
	if err := json.Unmarshal([]byte(ticketJSON), &ticket); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket: %w", err)
	}

	return &ticket, nil
}

// ListTickets retrieves all tickets for a guild, newest first
func (r *redisRepository) ListTickets(ctx context.Context, input *ListTicketsInput) ([]*models.Ticket, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	guildKey := fmt.Sprintf(guildTicketsKeyFormat, input.GuildID)
	ticketIDs, err := r.client.ZRevRange(ctx, guildKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket IDs: %w", err)
	}

	if len(ticketIDs) == 0 {
		return []*models.Ticket{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(ticketIDs))
	for _, id := range ticketIDs {
		commands = append(commands, pipe.Get(ctx, ticketKeyPrefix+id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	tickets := make([]*models.Ticket, 0, len(ticketIDs))
	for i, cmd := range commands {
		ticketJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Row removed between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to get ticket %s: %w", ticketIDs[i], err)
		}

		var ticket models.Ticket
		if err := json.Unmarshal([]byte(ticketJSON), &ticket); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket %s: %w", ticketIDs[i], err)
		}

		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

// ClaimTicket sets the claimer if and only if the ticket is unclaimed
func (r *redisRepository) ClaimTicket(ctx context.Context, input *ClaimTicketInput) (*models.Ticket, error) {
	if input == nil || input.TicketID == "" || input.ClaimerID == "" {
		return nil, errors.New("input, ticket ID and claimer ID cannot be empty")
	}

	now := r.clock.Now().UTC().Format(timeLayout)
	result, err := claimScript.Run(ctx, r.client,
		[]string{ticketKeyPrefix + input.TicketID},
		input.ClaimerID, now,
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim ticket: %w", err)
	}

	code, detail, err := parseScriptResult(result)
	if err != nil {
		return nil, err
	}

	switch code {
	case scriptNotFound:
		return nil, ErrTicketNotFound
	case scriptConflict:
		return nil, &AlreadyClaimedError{ClaimedBy: detail}
	}

	return unmarshalTicket(detail)
}

// CloseTicket closes the ticket if and only if it is currently open
func (r *redisRepository) CloseTicket(ctx context.Context, input *CloseTicketInput) (*models.Ticket, error) {
	if input == nil || input.TicketID == "" || input.ClosedBy == "" {
		return nil, errors.New("input, ticket ID and closer ID cannot be empty")
	}

	now := r.clock.Now().UTC().Format(timeLayout)
	result, err := closeScript.Run(ctx, r.client,
		[]string{ticketKeyPrefix + input.TicketID},
		input.ClosedBy, now,
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to close ticket: %w", err)
	}

	code, detail, err := parseScriptResult(result)
	if err != nil {
		return nil, err
	}

	switch code {
	case scriptNotFound:
		return nil, ErrTicketNotFound
	case scriptConflict:
		return nil, ErrTicketNotOpen
	}

	return unmarshalTicket(detail)
}

// SetPriority updates the ticket's priority
func (r *redisRepository) SetPriority(ctx context.Context, input *SetPriorityInput) (*models.Ticket, error) {
	if input == nil || input.TicketID == "" || input.Priority == "" {
		return nil, errors.New("input, ticket ID and priority cannot be empty")
	}

	now := r.clock.Now().UTC().Format(timeLayout)
	result, err := priorityScript.Run(ctx, r.client,
		[]string{ticketKeyPrefix + input.TicketID},
		string(input.Priority), now,
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to set ticket priority: %w", err)
	}

	code, detail, err := parseScriptResult(result)
	if err != nil {
		return nil, err
	}

	if code == scriptNotFound {
		return nil, ErrTicketNotFound
	}

	return unmarshalTicket(detail)
}

func unmarshalTicket(raw string) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := json.Unmarshal([]byte(raw), &ticket); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket: %w", err)
	}
	return &ticket, nil
}
