package reminder

import (
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

// CreateReminderInput contains parameters for persisting a reminder
type CreateReminderInput struct {
	Reminder *models.Reminder
}

// ListRemindersInput contains parameters for listing a user's reminders
type ListRemindersInput struct {
	UserID string
}

// ClaimDueInput contains parameters for claiming due reminders
type ClaimDueInput struct {
	Now time.Time
}
