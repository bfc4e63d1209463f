package session

import "github.com/KirkDiggler/guildkeeper/internal/models"

// CreateSessionInput contains parameters for persisting a session
type CreateSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	Token string
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	Token string
}
