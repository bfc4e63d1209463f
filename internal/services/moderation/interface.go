package moderation

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/guildkeeper/internal/services/moderation Service

// Service defines the interface for moderation operations
type Service interface {
	// AddTempPunishment issues a temporary ban or mute that the scheduler
	// lifts once expired
	AddTempPunishment(ctx context.Context, input *AddTempPunishmentInput) (*AddTempPunishmentOutput, error)

	// ListPunishments retrieves a guild's active punishments
	ListPunishments(ctx context.Context, input *ListPunishmentsInput) (*ListPunishmentsOutput, error)

	// AddWarn records a warning against a member
	AddWarn(ctx context.Context, input *AddWarnInput) (*AddWarnOutput, error)

	// ListWarns retrieves a member's warnings, newest first
	ListWarns(ctx context.Context, input *ListWarnsInput) (*ListWarnsOutput, error)

	// AddXP grants XP to a member and returns their new total
	AddXP(ctx context.Context, input *AddXPInput) (*AddXPOutput, error)

	// Leaderboard retrieves the guild's top members by XP
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)
}
