package session

import (
	"context"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// CreateSession persists a new session
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by token. A session found past its
	// expiry is deleted within the same lookup and reported as
	// ErrSessionExpired; the caller never sees an expired identity.
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session. Deleting an absent token is a no-op.
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
