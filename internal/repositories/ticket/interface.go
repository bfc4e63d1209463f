package ticket

import (
	"context"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/guildkeeper/internal/repositories/ticket Repository

// Repository defines the interface for ticket data persistence
type Repository interface {
	// AllocateNumber atomically increments the guild's ticket counter and
	// returns the new value. Two concurrent callers never receive the same
	// number.
	AllocateNumber(ctx context.Context, input *AllocateNumberInput) (int64, error)

	// CreateTicket persists a new ticket
	CreateTicket(ctx context.Context, input *CreateTicketInput) error

	// GetTicket retrieves a ticket by ID
	GetTicket(ctx context.Context, input *GetTicketInput) (*models.Ticket, error)

	// ListTickets retrieves all tickets for a guild, newest first
	ListTickets(ctx context.Context, input *ListTicketsInput) ([]*models.Ticket, error)

	// ClaimTicket sets the claimer if and only if the ticket is unclaimed
	ClaimTicket(ctx context.Context, input *ClaimTicketInput) (*models.Ticket, error)

	// CloseTicket closes the ticket if and only if it is currently open
	CloseTicket(ctx context.Context, input *CloseTicketInput) (*models.Ticket, error)

	// SetPriority updates the ticket's priority
	SetPriority(ctx context.Context, input *SetPriorityInput) (*models.Ticket, error)
}
