package models

import (
	"time"
)

// PunishmentType represents the kind of temporary punishment
type PunishmentType string

const (
	// PunishmentTypeBan indicates a temporary ban
	PunishmentTypeBan PunishmentType = "ban"

	// PunishmentTypeMute indicates a temporary mute
	PunishmentTypeMute PunishmentType = "mute"
)

// ValidPunishmentType reports whether t is one of the recognized types
func ValidPunishmentType(t PunishmentType) bool {
	return t == PunishmentTypeBan || t == PunishmentTypeMute
}

// TempPunishment represents a temporary ban or mute that lifts at ExpiresAt.
// The row's existence is the active state: the scheduler deletes it once
// expired, and the deletion is the lift signal.
type TempPunishment struct {
	// ID is the unique identifier for the punishment
	ID string `json:"id"`

	// GuildID is the Discord server/guild the punishment applies in
	GuildID string `json:"guild_id"`

	// UserID is the punished user
	UserID string `json:"user_id"`

	// Type is the kind of punishment
	Type PunishmentType `json:"type"`

	// ExpiresAt is when the punishment should be lifted
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is when the punishment was issued
	CreatedAt time.Time `json:"created_at"`
}
