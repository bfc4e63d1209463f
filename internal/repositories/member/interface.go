package member

import (
	"context"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/guildkeeper/internal/repositories/member Repository

// Repository defines the interface for member moderation and XP persistence
type Repository interface {
	// AddWarn persists a new warning against a member
	AddWarn(ctx context.Context, input *AddWarnInput) error

	// ListWarns retrieves a member's warnings, newest first
	ListWarns(ctx context.Context, input *ListWarnsInput) ([]*models.Warn, error)

	// AddXP increments a member's XP and returns the new total
	AddXP(ctx context.Context, input *AddXPInput) (int64, error)

	// Leaderboard retrieves the top members of a guild by XP, highest first
	Leaderboard(ctx context.Context, input *LeaderboardInput) ([]*models.XPEntry, error)
}
