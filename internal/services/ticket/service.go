package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/common/uuid"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	ticketRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/ticket"
)

// service implements the Service interface
type service struct {
	ticketRepo    ticketRepo.Repository
	eventBus      events.Publisher
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// NewService creates a new ticket service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TicketRepo == nil {
		return nil, ErrNilTicketRepo
	}

	if cfg.EventBus == nil {
		return nil, ErrNilEventBus
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		ticketRepo:    cfg.TicketRepo,
		eventBus:      cfg.EventBus,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateTicket opens a new ticket with the next per-guild number
func (s *service) CreateTicket(ctx context.Context, input *CreateTicketInput) (*CreateTicketOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	priority := input.Priority
	if priority == "" {
		priority = models.TicketPriorityNormal
	}
	if !models.ValidTicketPriority(priority) {
		return nil, ErrInvalidPriority
	}

	number, err := s.ticketRepo.AllocateNumber(ctx, &ticketRepo.AllocateNumberInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate ticket number: %w", err)
	}

	now := s.clock.Now()
	ticket := &models.Ticket{
		ID:           s.uuidGenerator.NewUUID(),
		GuildID:      input.GuildID,
		Number:       number,
		ChannelID:    input.ChannelID,
		UserID:       input.UserID,
		Category:     input.Category,
		Subject:      input.Subject,
		Status:       models.TicketStatusOpen,
		Priority:     priority,
		LastActivity: now,
		CreatedAt:    now,
	}

	if err := s.ticketRepo.CreateTicket(ctx, &ticketRepo.CreateTicketInput{
		Ticket: ticket,
	}); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.eventBus.Publish(events.NewTicketUpdate(ticket.GuildID, ticket.ID, string(ticket.Status)))
	s.eventBus.Publish(events.NewDashboardLog(ticket.GuildID, "ticket_open", input.UserID,
		fmt.Sprintf("ticket #%d opened", ticket.Number)))

	return &CreateTicketOutput{Ticket: ticket}, nil
}

// GetTicket retrieves a ticket by ID
func (s *service) GetTicket(ctx context.Context, input *GetTicketInput) (*GetTicketOutput, error) {
	if input == nil || input.TicketID == "" {
		return nil, ErrMissingTicketID
	}

	ticket, err := s.ticketRepo.GetTicket(ctx, &ticketRepo.GetTicketInput{
		TicketID: input.TicketID,
	})
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	return &GetTicketOutput{Ticket: ticket}, nil
}

// ListTickets retrieves all tickets for a guild, newest first
func (s *service) ListTickets(ctx context.Context, input *ListTicketsInput) (*ListTicketsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	tickets, err := s.ticketRepo.ListTickets(ctx, &ticketRepo.ListTicketsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		filtered := make([]*models.Ticket, 0, len(tickets))
		for _, t := range tickets {
			if t.Status == input.Status {
				filtered = append(filtered, t)
			}
		}
		tickets = filtered
	}

	tickets = page(tickets, input.Offset, input.Limit)

	return &ListTicketsOutput{Tickets: tickets}, nil
}

// page slices a newest-first listing; a zero limit means no cap
func page(tickets []*models.Ticket, offset, limit int) []*models.Ticket {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(tickets) {
		return []*models.Ticket{}
	}

	tickets = tickets[offset:]
	if limit > 0 && limit < len(tickets) {
		tickets = tickets[:limit]
	}
	return tickets
}

// ClaimTicket assigns a ticket to a staff member
func (s *service) ClaimTicket(ctx context.Context, input *ClaimTicketInput) (*ClaimTicketOutput, error) {
	if input == nil || input.TicketID == "" {
		return nil, ErrMissingTicketID
	}

	if input.ClaimerID == "" {
		return nil, ErrMissingClaimerID
	}

	ticket, err := s.ticketRepo.ClaimTicket(ctx, &ticketRepo.ClaimTicketInput{
		TicketID:  input.TicketID,
		ClaimerID: input.ClaimerID,
	})
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}

		var alreadyClaimed *ticketRepo.AlreadyClaimedError
		if errors.As(err, &alreadyClaimed) {
			return nil, &AlreadyClaimedError{ClaimedBy: alreadyClaimed.ClaimedBy}
		}

		return nil, err
	}

	s.eventBus.Publish(events.NewTicketUpdate(ticket.GuildID, ticket.ID, string(ticket.Status)))
	s.eventBus.Publish(events.NewDashboardLog(ticket.GuildID, "ticket_claim", input.ClaimerID,
		fmt.Sprintf("ticket #%d claimed", ticket.Number)))

	return &ClaimTicketOutput{Ticket: ticket}, nil
}

// CloseTicket closes an open ticket
func (s *service) CloseTicket(ctx context.Context, input *CloseTicketInput) (*CloseTicketOutput, error) {
	if input == nil || input.TicketID == "" {
		return nil, ErrMissingTicketID
	}

	if input.ClosedBy == "" {
		return nil, ErrMissingUserID
	}

	ticket, err := s.ticketRepo.CloseTicket(ctx, &ticketRepo.CloseTicketInput{
		TicketID: input.TicketID,
		ClosedBy: input.ClosedBy,
	})
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		if errors.Is(err, ticketRepo.ErrTicketNotOpen) {
			return nil, ErrTicketNotOpen
		}
		return nil, err
	}

	s.eventBus.Publish(events.NewTicketUpdate(ticket.GuildID, ticket.ID, string(ticket.Status)))
	s.eventBus.Publish(events.NewDashboardLog(ticket.GuildID, "ticket_close", input.ClosedBy,
		fmt.Sprintf("ticket #%d closed", ticket.Number)))

	return &CloseTicketOutput{Ticket: ticket}, nil
}

// SetPriority updates a ticket's priority
func (s *service) SetPriority(ctx context.Context, input *SetPriorityInput) (*SetPriorityOutput, error) {
	if input == nil || input.TicketID == "" {
		return nil, ErrMissingTicketID
	}

	if !models.ValidTicketPriority(input.Priority) {
		return nil, ErrInvalidPriority
	}

	ticket, err := s.ticketRepo.SetPriority(ctx, &ticketRepo.SetPriorityInput{
		TicketID: input.TicketID,
		Priority: input.Priority,
	})
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	s.eventBus.Publish(events.NewTicketUpdate(ticket.GuildID, ticket.ID, string(ticket.Status)))

	return &SetPriorityOutput{Ticket: ticket}, nil
}
