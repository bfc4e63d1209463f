package session

import (
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	sessionRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/session"
)

// Config holds configuration for the session service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock clock.Clock

	// TTL is how long a new session stays valid; defaults to 7 days
	TTL time.Duration
}

// StartSessionInput contains the identity a new session is issued for
type StartSessionInput struct {
	// UserID is the Discord user the session belongs to
	UserID string

	// Username is the Discord username at login time
	Username string

	// Avatar is the Discord avatar hash, if any
	Avatar string

	// AccessToken is the Discord OAuth access token for this user
	AccessToken string
}

// StartSessionOutput contains the newly issued session
type StartSessionOutput struct {
	Session *models.Session
}

// ResolveSessionInput contains the token to look up
type ResolveSessionInput struct {
	Token string
}

// ResolveSessionOutput contains the resolved session
type ResolveSessionOutput struct {
	Session *models.Session
}

// RevokeSessionInput contains the token to revoke
type RevokeSessionInput struct {
	Token string
}
