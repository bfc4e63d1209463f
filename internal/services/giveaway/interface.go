package giveaway

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/guildkeeper/internal/services/giveaway Service

// Service defines the interface for giveaway operations
type Service interface {
	// CreateGiveaway starts a new giveaway in a guild channel
	CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*CreateGiveawayOutput, error)

	// GetGiveaway retrieves a giveaway by ID
	GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*GetGiveawayOutput, error)

	// ListGiveaways retrieves all giveaways for a guild, newest first
	ListGiveaways(ctx context.Context, input *ListGiveawaysInput) (*ListGiveawaysOutput, error)

	// EnterGiveaway records a user's entry. Re-entering is a no-op
	// reported through AlreadyEntered rather than an error.
	EnterGiveaway(ctx context.Context, input *EnterGiveawayInput) (*EnterGiveawayOutput, error)

	// EndGiveaway draws winners and finishes the giveaway. Exactly one of
	// any set of concurrent enders wins; the rest get ErrGiveawayEnded.
	EndGiveaway(ctx context.Context, input *EndGiveawayInput) (*EndGiveawayOutput, error)

	// RerollWinners draws a fresh set of winners for an ended giveaway
	RerollWinners(ctx context.Context, input *RerollWinnersInput) (*RerollWinnersOutput, error)
}
