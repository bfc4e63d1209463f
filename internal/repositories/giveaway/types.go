package giveaway

import (
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

// CreateGiveawayInput contains parameters for persisting a new giveaway
type CreateGiveawayInput struct {
	Giveaway *models.Giveaway
}

// GetGiveawayInput contains parameters for retrieving a giveaway
type GetGiveawayInput struct {
	GiveawayID string
}

// ListGiveawaysInput contains parameters for listing a guild's giveaways
type ListGiveawaysInput struct {
	GuildID string
}

// AddParticipantInput contains parameters for entering a giveaway
type AddParticipantInput struct {
	GiveawayID string
	UserID     string
}

// EndGiveawayInput contains parameters for ending a giveaway
type EndGiveawayInput struct {
	GiveawayID string
	WinnerIDs  []string
}

// SetWinnersInput contains parameters for rerolling winners
type SetWinnersInput struct {
	GiveawayID string
	WinnerIDs  []string
}

// ListDueInput contains parameters for discovering due giveaways
type ListDueInput struct {
	Now time.Time
}
