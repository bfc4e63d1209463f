package models

import (
	"time"
)

// Reminder represents a pending reminder. Existence means pending: the
// scheduler deletes the row once due and hands it to the bot relay for
// delivery.
type Reminder struct {
	// ID is the unique identifier for the reminder
	ID string `json:"id"`

	// UserID is the user to remind
	UserID string `json:"user_id"`

	// GuildID is the Discord server/guild the reminder was set in
	GuildID string `json:"guild_id"`

	// ChannelID is the Discord channel to deliver the reminder to
	ChannelID string `json:"channel_id"`

	// Message is the reminder text
	Message string `json:"message"`

	// RemindAt is when the reminder is due
	RemindAt time.Time `json:"remind_at"`

	// CreatedAt is when the reminder was created
	CreatedAt time.Time `json:"created_at"`
}
