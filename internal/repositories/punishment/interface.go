package punishment

import (
	"context"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

// Repository defines the interface for temp punishment data persistence
type Repository interface {
	// CreatePunishment persists a new temporary punishment
	CreatePunishment(ctx context.Context, input *CreatePunishmentInput) error

	// ListPunishments retrieves all active punishments for a guild
	ListPunishments(ctx context.Context, input *ListPunishmentsInput) ([]*models.TempPunishment, error)

	// DeleteExpired removes all punishments whose expiry has passed and
	// returns them. The deletion is the lift signal; re-running after a
	// partial failure just re-discovers whatever is still present.
	DeleteExpired(ctx context.Context, input *DeleteExpiredInput) ([]*models.TempPunishment, error)
}
