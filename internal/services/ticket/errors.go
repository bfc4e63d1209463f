package ticket

import "fmt"

// TicketError is a custom error type for ticket-related errors
type TicketError string

// Error implements the error interface
func (e TicketError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTicketNotFound   TicketError = "ticket not found"
	ErrTicketNotOpen    TicketError = "ticket is not open"
	ErrInvalidPriority  TicketError = "invalid ticket priority"
	ErrMissingGuildID   TicketError = "guild ID is required"
	ErrMissingUserID    TicketError = "user ID is required"
	ErrMissingTicketID  TicketError = "ticket ID is required"
	ErrMissingClaimerID TicketError = "claimer ID is required"
	ErrNilConfig        TicketError = "config cannot be nil"
	ErrNilTicketRepo    TicketError = "ticket repository cannot be nil"
	ErrNilEventBus      TicketError = "event bus cannot be nil"
	ErrNilClock         TicketError = "clock cannot be nil"
	ErrNilUUIDGenerator TicketError = "UUID generator cannot be nil"
)

// AlreadyClaimedError is returned when a claim loses the race to an earlier
// claimer. It carries the winning claimer so callers can surface it.
type AlreadyClaimedError struct {
	ClaimedBy string
}

// Error implements the error interface
func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("ticket already claimed by %s", e.ClaimedBy)
}
