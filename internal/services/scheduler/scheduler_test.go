package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/guildkeeper/internal/common/clock/mocks"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	"github.com/KirkDiggler/guildkeeper/internal/relay"
	giveawayRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/giveaway"
	giveawayRepoMocks "github.com/KirkDiggler/guildkeeper/internal/repositories/giveaway/mocks"
	punishmentRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/punishment"
	punishmentMocks "github.com/KirkDiggler/guildkeeper/internal/repositories/punishment/mocks"
	reminderRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/reminder"
	reminderMocks "github.com/KirkDiggler/guildkeeper/internal/repositories/reminder/mocks"
	giveawaySvc "github.com/KirkDiggler/guildkeeper/internal/services/giveaway"
	giveawaySvcMocks "github.com/KirkDiggler/guildkeeper/internal/services/giveaway/mocks"
)

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockPunishmentRepo *punishmentMocks.MockRepository
	mockReminderRepo   *reminderMocks.MockRepository
	mockGiveawayRepo   *giveawayRepoMocks.MockRepository
	mockGiveawaySvc    *giveawaySvcMocks.MockService
	relayQueue         *relay.Queue
	eventBus           *events.Bus
	scheduler          *Scheduler
	mockClock          *clockMocks.MockClock
	ctx                context.Context

	testTime time.Time
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPunishmentRepo = punishmentMocks.NewMockRepository(s.mockCtrl)
	s.mockReminderRepo = reminderMocks.NewMockRepository(s.mockCtrl)
	s.mockGiveawayRepo = giveawayRepoMocks.NewMockRepository(s.mockCtrl)
	s.mockGiveawaySvc = giveawaySvcMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.relayQueue = relay.NewQueue(nil)
	s.eventBus = events.New(nil)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	sched, err := New(&Config{
		PunishmentRepo:  s.mockPunishmentRepo,
		ReminderRepo:    s.mockReminderRepo,
		GiveawayRepo:    s.mockGiveawayRepo,
		GiveawayService: s.mockGiveawaySvc,
		RelayQueue:      s.relayQueue,
		EventBus:        s.eventBus,
		Clock:           s.mockClock,
	})
	s.Require().NoError(err)
	s.scheduler = sched
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) expectQuietPasses() {
	s.mockPunishmentRepo.EXPECT().
		DeleteExpired(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	s.mockGiveawayRepo.EXPECT().
		ListDue(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	s.mockReminderRepo.EXPECT().
		ClaimDue(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
}

func (s *SchedulerTestSuite) TestTickLiftsExpiredPunishments() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	expired := []*models.TempPunishment{
		{ID: "p-1", GuildID: "guild-1", UserID: "user-1", Type: models.PunishmentTypeMute},
		{ID: "p-2", GuildID: "guild-2", UserID: "user-2", Type: models.PunishmentTypeBan},
	}

	s.mockPunishmentRepo.EXPECT().
		DeleteExpired(s.ctx, &punishmentRepo.DeleteExpiredInput{Now: s.testTime}).
		Return(expired, nil)
	s.mockGiveawayRepo.EXPECT().ListDue(s.ctx, gomock.Any()).Return(nil, nil)
	s.mockReminderRepo.EXPECT().ClaimDue(s.ctx, gomock.Any()).Return(nil, nil)

	s.scheduler.tick(s.ctx)

	actions := s.relayQueue.Drain()
	s.Require().Len(actions, 2)
	s.Equal(relay.ActionPunishmentLift, actions[0].Type)
	s.Equal("user-1", actions[0].Payload["user_id"])
	s.Equal("mute", actions[0].Payload["kind"])
}

func (s *SchedulerTestSuite) TestTickEndsDueGiveaways() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockPunishmentRepo.EXPECT().DeleteExpired(s.ctx, gomock.Any()).Return(nil, nil)
	s.mockReminderRepo.EXPECT().ClaimDue(s.ctx, gomock.Any()).Return(nil, nil)

	s.mockGiveawayRepo.EXPECT().
		ListDue(s.ctx, &giveawayRepo.ListDueInput{Now: s.testTime}).
		Return([]string{"g-1"}, nil)

	ended := &models.Giveaway{
		ID:        "g-1",
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		Prize:     "nitro",
		Ended:     true,
		WinnerIDs: []string{"user-1"},
	}

	s.mockGiveawaySvc.EXPECT().
		EndGiveaway(s.ctx, &giveawaySvc.EndGiveawayInput{GiveawayID: "g-1"}).
		Return(&giveawaySvc.EndGiveawayOutput{Giveaway: ended}, nil)

	s.scheduler.tick(s.ctx)

	actions := s.relayQueue.Drain()
	s.Require().Len(actions, 1)
	s.Equal(relay.ActionMessageSend, actions[0].Type)
	s.Equal("channel-1", actions[0].Payload["channel_id"])
	s.Equal([]string{"user-1"}, actions[0].Payload["winner_ids"])
}

func (s *SchedulerTestSuite) TestTickSkipsGiveawayEndedByHand() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockPunishmentRepo.EXPECT().DeleteExpired(s.ctx, gomock.Any()).Return(nil, nil)
	s.mockReminderRepo.EXPECT().ClaimDue(s.ctx, gomock.Any()).Return(nil, nil)

	s.mockGiveawayRepo.EXPECT().
		ListDue(s.ctx, gomock.Any()).
		Return([]string{"g-1", "g-2"}, nil)

	ended := &models.Giveaway{ID: "g-2", GuildID: "guild-1", Ended: true}

	gomock.InOrder(
		s.mockGiveawaySvc.EXPECT().
			EndGiveaway(s.ctx, &giveawaySvc.EndGiveawayInput{GiveawayID: "g-1"}).
			Return(nil, giveawaySvc.ErrGiveawayEnded),
		s.mockGiveawaySvc.EXPECT().
			EndGiveaway(s.ctx, &giveawaySvc.EndGiveawayInput{GiveawayID: "g-2"}).
			Return(&giveawaySvc.EndGiveawayOutput{Giveaway: ended}, nil),
	)

	s.scheduler.tick(s.ctx)

	// The manually ended giveaway produced no bot work
	actions := s.relayQueue.Drain()
	s.Require().Len(actions, 1)
	s.Equal("g-2", actions[0].Payload["giveaway_id"])
}

func (s *SchedulerTestSuite) TestTickDeliversDueReminders() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockPunishmentRepo.EXPECT().DeleteExpired(s.ctx, gomock.Any()).Return(nil, nil)
	s.mockGiveawayRepo.EXPECT().ListDue(s.ctx, gomock.Any()).Return(nil, nil)

	due := []*models.Reminder{
		{ID: "r-1", UserID: "user-1", GuildID: "guild-1", ChannelID: "channel-1", Message: "stand up"},
	}

	s.mockReminderRepo.EXPECT().
		ClaimDue(s.ctx, &reminderRepo.ClaimDueInput{Now: s.testTime}).
		Return(due, nil)

	s.scheduler.tick(s.ctx)

	actions := s.relayQueue.Drain()
	s.Require().Len(actions, 1)
	s.Equal(relay.ActionReminderDeliver, actions[0].Type)
	s.Equal("stand up", actions[0].Payload["message"])
}

func (s *SchedulerTestSuite) TestFailingPassDoesNotStopOthers() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockPunishmentRepo.EXPECT().
		DeleteExpired(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	s.mockGiveawayRepo.EXPECT().ListDue(s.ctx, gomock.Any()).Return(nil, nil)

	due := []*models.Reminder{
		{ID: "r-1", UserID: "user-1", GuildID: "guild-1", Message: "still here"},
	}
	s.mockReminderRepo.EXPECT().ClaimDue(s.ctx, gomock.Any()).Return(due, nil)

	s.scheduler.tick(s.ctx)

	// Later passes still ran
	actions := s.relayQueue.Drain()
	s.Require().Len(actions, 1)
	s.Equal(relay.ActionReminderDeliver, actions[0].Type)
}

func (s *SchedulerTestSuite) TestRunStopsOnContextCancel() {
	s.expectQuietPasses()
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	sched, err := New(&Config{
		PunishmentRepo:  s.mockPunishmentRepo,
		ReminderRepo:    s.mockReminderRepo,
		GiveawayRepo:    s.mockGiveawayRepo,
		GiveawayService: s.mockGiveawaySvc,
		RelayQueue:      s.relayQueue,
		EventBus:        s.eventBus,
		Clock:           s.mockClock,
		Interval:        time.Millisecond,
	})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("scheduler did not stop after cancel")
	}
}
