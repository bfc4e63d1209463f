package ticket

import (
	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/common/uuid"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	ticketRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/ticket"
)

// Config holds configuration for the ticket service
type Config struct {
	// Repository dependencies
	TicketRepo ticketRepo.Repository

	// EventBus receives ticket lifecycle events for dashboard fan-out
	EventBus events.Publisher

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateTicketInput contains parameters for opening a ticket
type CreateTicketInput struct {
	// GuildID is the guild the ticket belongs to
	GuildID string

	// UserID is the user opening the ticket
	UserID string

	// ChannelID is the Discord channel created for the ticket, if known
	ChannelID string

	// Category is an optional ticket category name
	Category string

	// Subject is an optional short description
	Subject string

	// Priority is the initial priority; defaults to normal when empty
	Priority models.TicketPriority
}

// CreateTicketOutput contains the result of opening a ticket
type CreateTicketOutput struct {
	Ticket *models.Ticket
}

// GetTicketInput contains parameters for retrieving a ticket
type GetTicketInput struct {
	TicketID string
}

// GetTicketOutput contains the retrieved ticket
type GetTicketOutput struct {
	Ticket *models.Ticket
}

// ListTicketsInput contains parameters for listing a guild's tickets
type ListTicketsInput struct {
	GuildID string

	// Status filters to one status when set
	Status models.TicketStatus

	// Offset and Limit page through the newest-first listing; a zero
	// Limit returns everything from Offset on
	Offset int
	Limit  int
}

// ListTicketsOutput contains the guild's tickets, newest first
type ListTicketsOutput struct {
	Tickets []*models.Ticket
}

// ClaimTicketInput contains parameters for claiming a ticket
type ClaimTicketInput struct {
	TicketID  string
	ClaimerID string
}

// ClaimTicketOutput contains the claimed ticket
type ClaimTicketOutput struct {
	Ticket *models.Ticket
}

// CloseTicketInput contains parameters for closing a ticket
type CloseTicketInput struct {
	TicketID string
	ClosedBy string
}

// CloseTicketOutput contains the closed ticket
type CloseTicketOutput struct {
	Ticket *models.Ticket
}

// SetPriorityInput contains parameters for changing a ticket's priority
type SetPriorityInput struct {
	TicketID string
	Priority models.TicketPriority
}

// SetPriorityOutput contains the updated ticket
type SetPriorityOutput struct {
	Ticket *models.Ticket
}
