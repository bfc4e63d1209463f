package reminder

import (
	"context"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

// Repository defines the interface for reminder data persistence
type Repository interface {
	// CreateReminder persists a new pending reminder
	CreateReminder(ctx context.Context, input *CreateReminderInput) error

	// ListReminders retrieves all pending reminders for a user
	ListReminders(ctx context.Context, input *ListRemindersInput) ([]*models.Reminder, error)

	// ClaimDue removes all reminders whose due time has passed and returns
	// them. Deletion is the only completion marker: a crash before the
	// delete just means the same rows are claimed again on the next call.
	ClaimDue(ctx context.Context, input *ClaimDueInput) ([]*models.Reminder, error)
}
