package models

import (
	"time"
)

// Warn records a moderation warning issued against a user
type Warn struct {
	// ID is the unique identifier for the warning
	ID string `json:"id"`

	// GuildID is the Discord server/guild the warning was issued in
	GuildID string `json:"guild_id"`

	// UserID is the warned user
	UserID string `json:"user_id"`

	// ModeratorID is the staff member who issued the warning
	ModeratorID string `json:"moderator_id"`

	// Reason is why the warning was issued
	Reason string `json:"reason"`

	// CreatedAt is when the warning was issued
	CreatedAt time.Time `json:"created_at"`
}

// XPEntry is one row of a guild XP leaderboard
type XPEntry struct {
	// UserID is the member the XP belongs to
	UserID string `json:"user_id"`

	// XP is the member's accumulated XP
	XP int64 `json:"xp"`
}
