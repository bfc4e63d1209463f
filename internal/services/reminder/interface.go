package reminder

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/guildkeeper/internal/services/reminder Service

// Service defines the interface for reminder operations
type Service interface {
	// AddReminder schedules a reminder for later delivery by the bot
	AddReminder(ctx context.Context, input *AddReminderInput) (*AddReminderOutput, error)

	// ListReminders retrieves a user's pending reminders
	ListReminders(ctx context.Context, input *ListRemindersInput) (*ListRemindersOutput, error)
}
