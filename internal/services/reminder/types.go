package reminder

import (
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/common/uuid"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	reminderRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/reminder"
)

// Config holds configuration for the reminder service
type Config struct {
	// Repository dependencies
	ReminderRepo reminderRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// AddReminderInput contains parameters for scheduling a reminder
type AddReminderInput struct {
	// UserID is the user to remind
	UserID string

	// GuildID is the guild the reminder was set in
	GuildID string

	// ChannelID is the channel to deliver the reminder to
	ChannelID string

	// Message is the reminder text
	Message string

	// RemindAt is when the reminder is due
	RemindAt time.Time
}

// AddReminderOutput contains the scheduled reminder
type AddReminderOutput struct {
	Reminder *models.Reminder
}

// ListRemindersInput contains parameters for listing a user's reminders
type ListRemindersInput struct {
	UserID string
}

// ListRemindersOutput contains the user's pending reminders
type ListRemindersOutput struct {
	Reminders []*models.Reminder
}
