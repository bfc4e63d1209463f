package member

import (
	"github.com/KirkDiggler/guildkeeper/internal/models"
)

// AddWarnInput contains parameters for persisting a warning
type AddWarnInput struct {
	Warn *models.Warn
}

// ListWarnsInput contains parameters for listing a member's warnings
type ListWarnsInput struct {
	GuildID string
	UserID  string
}

// AddXPInput contains parameters for granting XP
type AddXPInput struct {
	GuildID string
	UserID  string
	Amount  int64
}

// LeaderboardInput contains parameters for reading a guild's XP leaderboard
type LeaderboardInput struct {
	GuildID string
	Limit   int64
}
