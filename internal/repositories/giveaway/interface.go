package giveaway

import (
	"context"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/guildkeeper/internal/repositories/giveaway Repository

// Repository defines the interface for giveaway data persistence
type Repository interface {
	// CreateGiveaway persists a new running giveaway
	CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) error

	// GetGiveaway retrieves a giveaway by ID, including participants and
	// winners
	GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error)

	// ListGiveaways retrieves all giveaways for a guild, newest first
	ListGiveaways(ctx context.Context, input *ListGiveawaysInput) ([]*models.Giveaway, error)

	// AddParticipant adds an entrant if the giveaway is still running and
	// they are not already entered. Returns true if the entrant was added,
	// false if they were already present.
	AddParticipant(ctx context.Context, input *AddParticipantInput) (bool, error)

	// EndGiveaway flips ended false -> true and stores the winners in the
	// same atomic step. Exactly one of two racing callers succeeds; the
	// other gets ErrGiveawayEnded.
	EndGiveaway(ctx context.Context, input *EndGiveawayInput) error

	// SetWinners replaces the winners of an already-ended giveaway
	SetWinners(ctx context.Context, input *SetWinnersInput) error

	// ListDue returns IDs of running giveaways whose end time has passed
	ListDue(ctx context.Context, input *ListDueInput) ([]string, error)
}
