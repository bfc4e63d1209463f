package models

import (
	"time"
)

// Session represents an authenticated dashboard session
type Session struct {
	// Token is the opaque session token, also the storage key
	Token string `json:"token"`

	// UserID is the Discord user the session belongs to
	UserID string `json:"user_id"`

	// Username is the Discord username at login time
	Username string `json:"username"`

	// Avatar is the Discord avatar hash, if any
	Avatar string `json:"avatar,omitempty"`

	// AccessToken is the Discord OAuth access token for this user
	AccessToken string `json:"access_token"`

	// ExpiresAt is when the session stops being valid
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is when the session was issued
	CreatedAt time.Time `json:"created_at"`
}

// Valid reports whether the session is still usable at the given time
func (s *Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
