package moderation

import (
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/common/uuid"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	memberRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/member"
	punishmentRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/punishment"
)

// Config holds configuration for the moderation service
type Config struct {
	// Repository dependencies
	PunishmentRepo punishmentRepo.Repository
	MemberRepo     memberRepo.Repository

	// EventBus receives moderation events for dashboard fan-out
	EventBus events.Publisher

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// AddTempPunishmentInput contains parameters for issuing a punishment
type AddTempPunishmentInput struct {
	// GuildID is the guild the punishment applies in
	GuildID string

	// UserID is the punished user
	UserID string

	// ModeratorID is the staff member issuing the punishment
	ModeratorID string

	// Type is the kind of punishment, ban or mute
	Type models.PunishmentType

	// ExpiresAt is when the punishment lifts
	ExpiresAt time.Time
}

// AddTempPunishmentOutput contains the issued punishment
type AddTempPunishmentOutput struct {
	Punishment *models.TempPunishment
}

// ListPunishmentsInput contains parameters for listing punishments
type ListPunishmentsInput struct {
	GuildID string
}

// ListPunishmentsOutput contains the guild's active punishments
type ListPunishmentsOutput struct {
	Punishments []*models.TempPunishment
}

// AddWarnInput contains parameters for warning a member
type AddWarnInput struct {
	GuildID     string
	UserID      string
	ModeratorID string
	Reason      string
}

// AddWarnOutput contains the recorded warning
type AddWarnOutput struct {
	Warn *models.Warn
}

// ListWarnsInput contains parameters for listing a member's warnings
type ListWarnsInput struct {
	GuildID string
	UserID  string
}

// ListWarnsOutput contains the member's warnings, newest first
type ListWarnsOutput struct {
	Warns []*models.Warn
}

// AddXPInput contains parameters for granting XP
type AddXPInput struct {
	GuildID string
	UserID  string
	Amount  int64
}

// AddXPOutput contains the member's new XP total
type AddXPOutput struct {
	Total int64
}

// LeaderboardInput contains parameters for reading the XP leaderboard
type LeaderboardInput struct {
	GuildID string
	Limit   int64
}

// LeaderboardOutput contains the top members by XP, highest first
type LeaderboardOutput struct {
	Entries []*models.XPEntry
}
