package relay

import (
	"sync"
)

const defaultCapacity = 512

// ActionType identifies what the bot is being asked to do
type ActionType string

const (
	// ActionReminderDeliver asks the bot to deliver a fired reminder
	ActionReminderDeliver ActionType = "reminder_deliver"

	// ActionMessageSend asks the bot to send a message to a channel
	ActionMessageSend ActionType = "message_send"

	// ActionChannelCreate asks the bot to create a channel
	ActionChannelCreate ActionType = "channel_create"

	// ActionPunishmentLift asks the bot to unban or unmute a user whose
	// temporary punishment has expired
	ActionPunishmentLift ActionType = "punishment_lift"
)

// Action is one unit of work only the bot process can perform. The core
// records that the action is required; the bot polls and executes it.
type Action struct {
	// Type identifies what the bot should do
	Type ActionType `json:"type"`

	// GuildID is the guild the action applies to
	GuildID string `json:"guild_id"`

	// Payload carries action-specific fields
	Payload map[string]any `json:"payload"`
}

// Config holds configuration for the relay queue
type Config struct {
	// Capacity is the maximum number of queued actions
	Capacity int
}

// Queue is a bounded in-memory FIFO of pending bot actions. When full, the
// oldest action is dropped: the bot reconciles against authoritative store
// state on its own poll cycle, so losing a stale entry is recoverable.
type Queue struct {
	mu       sync.Mutex
	actions  []*Action
	capacity int
}

// NewQueue creates a new relay queue
func NewQueue(cfg *Config) *Queue {
	capacity := defaultCapacity
	if cfg != nil && cfg.Capacity > 0 {
		capacity = cfg.Capacity
	}

	return &Queue{
		capacity: capacity,
	}
}

// Push appends an action, dropping the oldest entry if the queue is full
func (q *Queue) Push(action *Action) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.actions) >= q.capacity {
		q.actions = q.actions[1:]
	}
	q.actions = append(q.actions, action)
}

// Drain returns all pending actions and empties the queue
func (q *Queue) Drain() []*Action {
	q.mu.Lock()
	defer q.mu.Unlock()

	actions := q.actions
	q.actions = nil
	return actions
}

// Len returns the number of pending actions
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.actions)
}
