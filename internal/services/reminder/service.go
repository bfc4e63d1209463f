package reminder

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/common/uuid"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	reminderRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/reminder"
)

// service implements the Service interface
type service struct {
	reminderRepo  reminderRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// NewService creates a new reminder service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ReminderRepo == nil {
		return nil, ErrNilReminderRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		reminderRepo:  cfg.ReminderRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// AddReminder schedules a reminder for later delivery by the bot
func (s *service) AddReminder(ctx context.Context, input *AddReminderInput) (*AddReminderOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrMissingMessage
	}

	now := s.clock.Now()
	if !input.RemindAt.After(now) {
		return nil, ErrInvalidRemindAt
	}

	reminder := &models.Reminder{
		ID:        s.uuidGenerator.NewUUID(),
		UserID:    input.UserID,
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		Message:   input.Message,
		RemindAt:  input.RemindAt,
		CreatedAt: now,
	}

	if err := s.reminderRepo.CreateReminder(ctx, &reminderRepo.CreateReminderInput{
		Reminder: reminder,
	}); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return &AddReminderOutput{Reminder: reminder}, nil
}

// ListReminders retrieves a user's pending reminders
func (s *service) ListReminders(ctx context.Context, input *ListRemindersInput) (*ListRemindersOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	reminders, err := s.reminderRepo.ListReminders(ctx, &reminderRepo.ListRemindersInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &ListRemindersOutput{Reminders: reminders}, nil
}
