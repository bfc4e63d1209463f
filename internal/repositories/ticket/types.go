package ticket

import "github.com/KirkDiggler/guildkeeper/internal/models"

// AllocateNumberInput contains parameters for allocating a ticket number
type AllocateNumberInput struct {
	GuildID string
}

// CreateTicketInput contains parameters for persisting a new ticket
type CreateTicketInput struct {
	Ticket *models.Ticket
}

// GetTicketInput contains parameters for retrieving a ticket
type GetTicketInput struct {
	TicketID string
}

// ListTicketsInput contains parameters for listing a guild's tickets
type ListTicketsInput struct {
	GuildID string
}

// ClaimTicketInput contains parameters for claiming a ticket
type ClaimTicketInput struct {
	TicketID  string
	ClaimerID string
}

// CloseTicketInput contains parameters for closing a ticket
type CloseTicketInput struct {
	TicketID string
	ClosedBy string
}

// SetPriorityInput contains parameters for updating a ticket's priority
type SetPriorityInput struct {
	TicketID string
	Priority models.TicketPriority
}
