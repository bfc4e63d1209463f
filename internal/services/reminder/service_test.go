package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/guildkeeper/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/guildkeeper/internal/common/uuid/mocks"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	reminderRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/reminder"
	reminderMocks "github.com/KirkDiggler/guildkeeper/internal/repositories/reminder/mocks"
)

type ReminderServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockReminderRepo *reminderMocks.MockRepository
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	svc              Service
	ctx              context.Context

	testTime time.Time
}

func (s *ReminderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReminderRepo = reminderMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	svc, err := NewService(&Config{
		ReminderRepo:  s.mockReminderRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ReminderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}

func (s *ReminderServiceTestSuite) TestAddReminder() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("reminder-1")

	s.mockReminderRepo.EXPECT().
		CreateReminder(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *reminderRepo.CreateReminderInput) error {
			s.Equal("reminder-1", input.Reminder.ID)
			s.Equal("stand up", input.Reminder.Message)
			s.True(s.testTime.Equal(input.Reminder.CreatedAt))
			return nil
		})

	output, err := s.svc.AddReminder(s.ctx, &AddReminderInput{
		UserID:    "user-1",
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		Message:   "stand up",
		RemindAt:  s.testTime.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Equal("reminder-1", output.Reminder.ID)
}

func (s *ReminderServiceTestSuite) TestAddReminderRejectsPastTime() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	_, err := s.svc.AddReminder(s.ctx, &AddReminderInput{
		UserID:   "user-1",
		Message:  "too late",
		RemindAt: s.testTime.Add(-time.Minute),
	})
	s.Require().ErrorIs(err, ErrInvalidRemindAt)
}

func (s *ReminderServiceTestSuite) TestAddReminderRequiresMessage() {
	_, err := s.svc.AddReminder(s.ctx, &AddReminderInput{
		UserID:   "user-1",
		Message:  "  ",
		RemindAt: s.testTime.Add(time.Hour),
	})
	s.Require().ErrorIs(err, ErrMissingMessage)
}

func (s *ReminderServiceTestSuite) TestListReminders() {
	reminders := []*models.Reminder{
		{ID: "reminder-1", Message: "stand up"},
	}

	s.mockReminderRepo.EXPECT().
		ListReminders(s.ctx, &reminderRepo.ListRemindersInput{UserID: "user-1"}).
		Return(reminders, nil)

	output, err := s.svc.ListReminders(s.ctx, &ListRemindersInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Reminders, 1)
	s.Equal("reminder-1", output.Reminders[0].ID)
}
