package session

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/guildkeeper/internal/services/session Service

// Service defines the interface for dashboard session operations
type Service interface {
	// StartSession mints an opaque token and persists a new session
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// ResolveSession looks up the session behind a token. Expired or
	// unknown tokens both report ErrSessionNotFound.
	ResolveSession(ctx context.Context, input *ResolveSessionInput) (*ResolveSessionOutput, error)

	// RevokeSession ends a session. Revoking an unknown token is a no-op.
	RevokeSession(ctx context.Context, input *RevokeSessionInput) error
}
