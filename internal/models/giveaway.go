package models

import (
	"time"
)

// Giveaway represents a prize giveaway running in a guild channel
type Giveaway struct {
	// ID is the unique identifier for the giveaway
	ID string `json:"id"`

	// GuildID is the Discord server/guild hosting the giveaway
	GuildID string `json:"guild_id"`

	// ChannelID is the Discord channel the giveaway message lives in
	ChannelID string `json:"channel_id"`

	// MessageID is the Discord message users react to
	MessageID string `json:"message_id"`

	// HostID is the staff member who started the giveaway
	HostID string `json:"host_id"`

	// Prize is what the winners receive
	Prize string `json:"prize"`

	// Winners is the desired number of winners
	Winners int `json:"winners"`

	// RequiredRole optionally restricts entry to holders of a role
	RequiredRole string `json:"required_role,omitempty"`

	// EndsAt is when the giveaway is due to end
	EndsAt time.Time `json:"ends_at"`

	// Ended indicates the giveaway has finished and winners were drawn
	Ended bool `json:"ended"`

	// WinnerIDs are the drawn winners, populated once Ended is true
	WinnerIDs []string `json:"winner_ids"`

	// Participants are the entrants in entry order, no duplicates
	Participants []string `json:"participants"`

	// CreatedAt is when the giveaway was created
	CreatedAt time.Time `json:"created_at"`
}
