package giveaway

import (
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/common/uuid"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	giveawayRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/giveaway"
	"github.com/KirkDiggler/guildkeeper/internal/sampler"
)

// Config holds configuration for the giveaway service
type Config struct {
	// Repository dependencies
	GiveawayRepo giveawayRepo.Repository

	// EventBus receives giveaway lifecycle events for dashboard fan-out
	EventBus events.Publisher

	// Sampler draws winners from the participant list
	Sampler sampler.Sampler

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGiveawayInput contains parameters for starting a giveaway
type CreateGiveawayInput struct {
	// GuildID is the guild hosting the giveaway
	GuildID string

	// ChannelID is the channel the giveaway message lives in
	ChannelID string

	// MessageID is the Discord message users react to, if known
	MessageID string

	// HostID is the staff member starting the giveaway
	HostID string

	// Prize is what the winners receive
	Prize string

	// Winners is the desired number of winners
	Winners int

	// RequiredRole optionally restricts entry to holders of a role
	RequiredRole string

	// EndsAt is when the giveaway is due to end
	EndsAt time.Time
}

// CreateGiveawayOutput contains the result of starting a giveaway
type CreateGiveawayOutput struct {
	Giveaway *models.Giveaway
}

// GetGiveawayInput contains parameters for retrieving a giveaway
type GetGiveawayInput struct {
	GiveawayID string
}

// GetGiveawayOutput contains the retrieved giveaway
type GetGiveawayOutput struct {
	Giveaway *models.Giveaway
}

// ListGiveawaysInput contains parameters for listing a guild's giveaways
type ListGiveawaysInput struct {
	GuildID string

	// ActiveOnly filters to giveaways that have not ended
	ActiveOnly bool
}

// ListGiveawaysOutput contains the guild's giveaways, newest first
type ListGiveawaysOutput struct {
	Giveaways []*models.Giveaway
}

// EnterGiveawayInput contains parameters for entering a giveaway
type EnterGiveawayInput struct {
	GiveawayID string
	UserID     string
}

// EnterGiveawayOutput contains the result of an entry attempt
type EnterGiveawayOutput struct {
	// AlreadyEntered is true when the user was entered before this call
	AlreadyEntered bool
}

// EndGiveawayInput contains parameters for ending a giveaway
type EndGiveawayInput struct {
	GiveawayID string
}

// EndGiveawayOutput contains the ended giveaway with winners drawn
type EndGiveawayOutput struct {
	Giveaway *models.Giveaway
}

// RerollWinnersInput contains parameters for redrawing winners
type RerollWinnersInput struct {
	GiveawayID string
}

// RerollWinnersOutput contains the giveaway with its fresh winners
type RerollWinnersOutput struct {
	Giveaway *models.Giveaway
}
