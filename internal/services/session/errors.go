package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound SessionError = "session not found"
	ErrMissingToken    SessionError = "session token is required"
	ErrMissingUserID   SessionError = "user ID is required"
	ErrNilConfig       SessionError = "config cannot be nil"
	ErrNilSessionRepo  SessionError = "session repository cannot be nil"
	ErrNilClock        SessionError = "clock cannot be nil"
)
