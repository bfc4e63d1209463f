package giveaway

// GiveawayError is a custom error type for giveaway-related errors
type GiveawayError string

// Error implements the error interface
func (e GiveawayError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGiveawayNotFound  GiveawayError = "giveaway not found"
	ErrGiveawayEnded     GiveawayError = "giveaway has already ended"
	ErrGiveawayNotEnded  GiveawayError = "giveaway has not ended yet"
	ErrMissingGuildID    GiveawayError = "guild ID is required"
	ErrMissingGiveawayID GiveawayError = "giveaway ID is required"
	ErrMissingUserID     GiveawayError = "user ID is required"
	ErrMissingPrize      GiveawayError = "prize is required"
	ErrInvalidWinners    GiveawayError = "winner count must be positive"
	ErrInvalidEndTime    GiveawayError = "end time must be in the future"
	ErrNilConfig         GiveawayError = "config cannot be nil"
	ErrNilGiveawayRepo   GiveawayError = "giveaway repository cannot be nil"
	ErrNilEventBus       GiveawayError = "event bus cannot be nil"
	ErrNilSampler        GiveawayError = "sampler cannot be nil"
	ErrNilClock          GiveawayError = "clock cannot be nil"
	ErrNilUUIDGenerator  GiveawayError = "UUID generator cannot be nil"
)
