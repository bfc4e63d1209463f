package ticket

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/guildkeeper/internal/services/ticket Service

// Service defines the interface for ticket operations
type Service interface {
	// CreateTicket opens a new ticket with the next per-guild number
	CreateTicket(ctx context.Context, input *CreateTicketInput) (*CreateTicketOutput, error)

	// GetTicket retrieves a ticket by ID
	GetTicket(ctx context.Context, input *GetTicketInput) (*GetTicketOutput, error)

	// ListTickets retrieves all tickets for a guild, newest first
	ListTickets(ctx context.Context, input *ListTicketsInput) (*ListTicketsOutput, error)

	// ClaimTicket assigns a ticket to a staff member. Exactly one of any
	// set of concurrent claimers wins; the rest learn who beat them.
	ClaimTicket(ctx context.Context, input *ClaimTicketInput) (*ClaimTicketOutput, error)

	// CloseTicket closes an open ticket
	CloseTicket(ctx context.Context, input *CloseTicketInput) (*CloseTicketOutput, error)

	// SetPriority updates a ticket's priority
	SetPriority(ctx context.Context, input *SetPriorityInput) (*SetPriorityOutput, error)
}
