package moderation

// ModerationError is a custom error type for moderation-related errors
type ModerationError string

// Error implements the error interface
func (e ModerationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidPunishmentType ModerationError = "invalid punishment type"
	ErrInvalidExpiry         ModerationError = "expiry must be in the future"
	ErrMissingGuildID        ModerationError = "guild ID is required"
	ErrMissingUserID         ModerationError = "user ID is required"
	ErrMissingModeratorID    ModerationError = "moderator ID is required"
	ErrMissingReason         ModerationError = "reason is required"
	ErrInvalidXPAmount       ModerationError = "XP amount must be positive"
	ErrNilConfig             ModerationError = "config cannot be nil"
	ErrNilPunishmentRepo     ModerationError = "punishment repository cannot be nil"
	ErrNilMemberRepo         ModerationError = "member repository cannot be nil"
	ErrNilEventBus           ModerationError = "event bus cannot be nil"
	ErrNilClock              ModerationError = "clock cannot be nil"
	ErrNilUUIDGenerator      ModerationError = "UUID generator cannot be nil"
)
