package models

import (
	"time"
)

// TicketStatus represents the current state of a ticket
type TicketStatus string

const (
	// TicketStatusOpen indicates a ticket is open and awaiting handling
	TicketStatusOpen TicketStatus = "open"

	// TicketStatusClosed indicates a ticket has been closed
	TicketStatusClosed TicketStatus = "closed"

	// TicketStatusReview indicates a closed ticket is awaiting a review
	TicketStatusReview TicketStatus = "review"
)

// TicketPriority represents the urgency of a ticket
type TicketPriority string

const (
	// TicketPriorityLow indicates a low priority ticket
	TicketPriorityLow TicketPriority = "low"

	// TicketPriorityNormal indicates a normal priority ticket
	TicketPriorityNormal TicketPriority = "normal"

	// TicketPriorityHigh indicates a high priority ticket
	TicketPriorityHigh TicketPriority = "high"

	// TicketPriorityUrgent indicates an urgent ticket
	TicketPriorityUrgent TicketPriority = "urgent"
)

// ValidTicketPriority reports whether p is one of the recognized priorities
func ValidTicketPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityNormal, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// Ticket represents a support ticket opened in a guild
type Ticket struct {
	// ID is the unique identifier for the ticket
	ID string `json:"id"`

	// GuildID is the Discord server/guild this ticket belongs to
	GuildID string `json:"guild_id"`

	// Number is the per-guild ticket number, strictly increasing within a guild
	Number int64 `json:"number"`

	// ChannelID is the Discord channel created for the ticket
	ChannelID string `json:"channel_id"`

	// UserID is the user who opened the ticket
	UserID string `json:"user_id"`

	// Category is an optional ticket category name
	Category string `json:"category,omitempty"`

	// Subject is an optional short description
	Subject string `json:"subject,omitempty"`

	// Status is the current state of the ticket
	Status TicketStatus `json:"status"`

	// Priority is the urgency of the ticket
	Priority TicketPriority `json:"priority"`

	// ClaimedBy is the staff member handling the ticket, empty if unclaimed
	ClaimedBy string `json:"claimed_by,omitempty"`

	// ClosedBy is the user who closed the ticket, empty while open
	ClosedBy string `json:"closed_by,omitempty"`

	// ClosedAt is when the ticket was closed
	ClosedAt time.Time `json:"closed_at,omitzero"`

	// LastActivity is when the ticket was last touched
	LastActivity time.Time `json:"last_activity"`

	// CreatedAt is when the ticket was created
	CreatedAt time.Time `json:"created_at"`
}
