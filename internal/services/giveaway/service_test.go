package giveaway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/guildkeeper/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/guildkeeper/internal/common/uuid/mocks"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	giveawayRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/giveaway"
	giveawayMocks "github.com/KirkDiggler/guildkeeper/internal/repositories/giveaway/mocks"
	samplerMocks "github.com/KirkDiggler/guildkeeper/internal/sampler/mocks"
)

type GiveawayServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockGiveawayRepo *giveawayMocks.MockRepository
	mockSampler      *samplerMocks.MockSampler
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	eventBus         *events.Bus
	svc              Service
	ctx              context.Context

	testTime       time.Time
	testGiveawayID string
}

func (s *GiveawayServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGiveawayRepo = giveawayMocks.NewMockRepository(s.mockCtrl)
	s.mockSampler = samplerMocks.NewMockSampler(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.eventBus = events.New(nil)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.testGiveawayID = "giveaway-id-1"

	svc, err := NewService(&Config{
		GiveawayRepo:  s.mockGiveawayRepo,
		EventBus:      s.eventBus,
		Sampler:       s.mockSampler,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *GiveawayServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGiveawayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GiveawayServiceTestSuite))
}

func (s *GiveawayServiceTestSuite) runningGiveaway(participants ...string) *models.Giveaway {
	return &models.Giveaway{
		ID:           s.testGiveawayID,
		GuildID:      "guild-1",
		ChannelID:    "channel-1",
		HostID:       "host-1",
		Prize:        "nitro",
		Winners:      2,
		EndsAt:       s.testTime.Add(time.Hour),
		Participants: participants,
		CreatedAt:    s.testTime.Add(-time.Hour),
	}
}

func (s *GiveawayServiceTestSuite) TestNewServiceValidatesConfig() {
	_, err := NewService(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{})
	s.Require().ErrorIs(err, ErrNilGiveawayRepo)

	_, err = NewService(&Config{GiveawayRepo: s.mockGiveawayRepo, EventBus: s.eventBus})
	s.Require().ErrorIs(err, ErrNilSampler)
}

func (s *GiveawayServiceTestSuite) TestCreateGiveaway() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGiveawayID)

	s.mockGiveawayRepo.EXPECT().
		CreateGiveaway(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *giveawayRepo.CreateGiveawayInput) error {
			s.Equal(s.testGiveawayID, input.Giveaway.ID)
			s.Equal("nitro", input.Giveaway.Prize)
			s.False(input.Giveaway.Ended)
			s.True(s.testTime.Equal(input.Giveaway.CreatedAt))
			return nil
		})

	output, err := s.svc.CreateGiveaway(s.ctx, &CreateGiveawayInput{
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		HostID:    "host-1",
		Prize:     "nitro",
		Winners:   2,
		EndsAt:    s.testTime.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Equal(s.testGiveawayID, output.Giveaway.ID)
}

func (s *GiveawayServiceTestSuite) TestCreateGiveawayValidation() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	_, err := s.svc.CreateGiveaway(s.ctx, &CreateGiveawayInput{
		GuildID: "guild-1",
		Winners: 1,
		EndsAt:  s.testTime.Add(time.Hour),
	})
	s.Require().ErrorIs(err, ErrMissingPrize)

	_, err = s.svc.CreateGiveaway(s.ctx, &CreateGiveawayInput{
		GuildID: "guild-1",
		Prize:   "nitro",
		Winners: 0,
		EndsAt:  s.testTime.Add(time.Hour),
	})
	s.Require().ErrorIs(err, ErrInvalidWinners)

	_, err = s.svc.CreateGiveaway(s.ctx, &CreateGiveawayInput{
		GuildID: "guild-1",
		Prize:   "nitro",
		Winners: 1,
		EndsAt:  s.testTime.Add(-time.Hour),
	})
	s.Require().ErrorIs(err, ErrInvalidEndTime)
}

func (s *GiveawayServiceTestSuite) TestEnterGiveaway() {
	s.mockGiveawayRepo.EXPECT().
		AddParticipant(s.ctx, &giveawayRepo.AddParticipantInput{
			GiveawayID: s.testGiveawayID,
			UserID:     "user-1",
		}).
		Return(true, nil)

	output, err := s.svc.EnterGiveaway(s.ctx, &EnterGiveawayInput{
		GiveawayID: s.testGiveawayID,
		UserID:     "user-1",
	})
	s.Require().NoError(err)
	s.False(output.AlreadyEntered)
}

func (s *GiveawayServiceTestSuite) TestEnterGiveawayTwiceIsIdempotent() {
	s.mockGiveawayRepo.EXPECT().
		AddParticipant(s.ctx, gomock.Any()).
		Return(false, nil)

	output, err := s.svc.EnterGiveaway(s.ctx, &EnterGiveawayInput{
		GiveawayID: s.testGiveawayID,
		UserID:     "user-1",
	})
	s.Require().NoError(err)
	s.True(output.AlreadyEntered)
}

func (s *GiveawayServiceTestSuite) TestEnterEndedGiveaway() {
	s.mockGiveawayRepo.EXPECT().
		AddParticipant(s.ctx, gomock.Any()).
		Return(false, giveawayRepo.ErrGiveawayEnded)

	_, err := s.svc.EnterGiveaway(s.ctx, &EnterGiveawayInput{
		GiveawayID: s.testGiveawayID,
		UserID:     "user-1",
	})
	s.Require().ErrorIs(err, ErrGiveawayEnded)
}

func (s *GiveawayServiceTestSuite) TestEndGiveaway() {
	running := s.runningGiveaway("user-1", "user-2", "user-3")

	ended := s.runningGiveaway("user-1", "user-2", "user-3")
	ended.Ended = true
	ended.WinnerIDs = []string{"user-3", "user-1"}

	gomock.InOrder(
		s.mockGiveawayRepo.EXPECT().
			GetGiveaway(s.ctx, &giveawayRepo.GetGiveawayInput{GiveawayID: s.testGiveawayID}).
			Return(running, nil),
		s.mockGiveawayRepo.EXPECT().
			EndGiveaway(s.ctx, &giveawayRepo.EndGiveawayInput{
				GiveawayID: s.testGiveawayID,
				WinnerIDs:  []string{"user-3", "user-1"},
			}).
			Return(nil),
		s.mockGiveawayRepo.EXPECT().
			GetGiveaway(s.ctx, &giveawayRepo.GetGiveawayInput{GiveawayID: s.testGiveawayID}).
			Return(ended, nil),
	)

	s.mockSampler.EXPECT().
		Pick([]string{"user-1", "user-2", "user-3"}, 2).
		Return([]string{"user-3", "user-1"})

	output, err := s.svc.EndGiveaway(s.ctx, &EndGiveawayInput{GiveawayID: s.testGiveawayID})
	s.Require().NoError(err)
	s.True(output.Giveaway.Ended)
	s.Equal([]string{"user-3", "user-1"}, output.Giveaway.WinnerIDs)
}

func (s *GiveawayServiceTestSuite) TestEndGiveawayAlreadyEnded() {
	ended := s.runningGiveaway("user-1")
	ended.Ended = true

	s.mockGiveawayRepo.EXPECT().
		GetGiveaway(s.ctx, gomock.Any()).
		Return(ended, nil)

	_, err := s.svc.EndGiveaway(s.ctx, &EndGiveawayInput{GiveawayID: s.testGiveawayID})
	s.Require().ErrorIs(err, ErrGiveawayEnded)
}

func (s *GiveawayServiceTestSuite) TestEndGiveawayLosesRace() {
	// A concurrent ender flipped the flag between the read and the CAS
	running := s.runningGiveaway("user-1", "user-2")

	s.mockGiveawayRepo.EXPECT().
		GetGiveaway(s.ctx, gomock.Any()).
		Return(running, nil)

	s.mockSampler.EXPECT().
		Pick(gomock.Any(), 2).
		Return([]string{"user-1", "user-2"})

	s.mockGiveawayRepo.EXPECT().
		EndGiveaway(s.ctx, gomock.Any()).
		Return(giveawayRepo.ErrGiveawayEnded)

	_, err := s.svc.EndGiveaway(s.ctx, &EndGiveawayInput{GiveawayID: s.testGiveawayID})
	s.Require().ErrorIs(err, ErrGiveawayEnded)
}

func (s *GiveawayServiceTestSuite) TestEndGiveawayNoParticipants() {
	running := s.runningGiveaway()

	ended := s.runningGiveaway()
	ended.Ended = true

	gomock.InOrder(
		s.mockGiveawayRepo.EXPECT().
			GetGiveaway(s.ctx, gomock.Any()).
			Return(running, nil),
		s.mockGiveawayRepo.EXPECT().
			EndGiveaway(s.ctx, &giveawayRepo.EndGiveawayInput{
				GiveawayID: s.testGiveawayID,
				WinnerIDs:  nil,
			}).
			Return(nil),
		s.mockGiveawayRepo.EXPECT().
			GetGiveaway(s.ctx, gomock.Any()).
			Return(ended, nil),
	)

	s.mockSampler.EXPECT().
		Pick(gomock.Nil(), 2).
		Return(nil)

	output, err := s.svc.EndGiveaway(s.ctx, &EndGiveawayInput{GiveawayID: s.testGiveawayID})
	s.Require().NoError(err)
	s.Empty(output.Giveaway.WinnerIDs)
}

func (s *GiveawayServiceTestSuite) TestRerollWinners() {
	ended := s.runningGiveaway("user-1", "user-2", "user-3")
	ended.Ended = true
	ended.WinnerIDs = []string{"user-1", "user-2"}

	rerolled := s.runningGiveaway("user-1", "user-2", "user-3")
	rerolled.Ended = true
	rerolled.WinnerIDs = []string{"user-2", "user-3"}

	gomock.InOrder(
		s.mockGiveawayRepo.EXPECT().
			GetGiveaway(s.ctx, gomock.Any()).
			Return(ended, nil),
		s.mockGiveawayRepo.EXPECT().
			SetWinners(s.ctx, &giveawayRepo.SetWinnersInput{
				GiveawayID: s.testGiveawayID,
				WinnerIDs:  []string{"user-2", "user-3"},
			}).
			Return(nil),
		s.mockGiveawayRepo.EXPECT().
			GetGiveaway(s.ctx, gomock.Any()).
			Return(rerolled, nil),
	)

	s.mockSampler.EXPECT().
		Pick([]string{"user-1", "user-2", "user-3"}, 2).
		Return([]string{"user-2", "user-3"})

	output, err := s.svc.RerollWinners(s.ctx, &RerollWinnersInput{GiveawayID: s.testGiveawayID})
	s.Require().NoError(err)
	s.Equal([]string{"user-2", "user-3"}, output.Giveaway.WinnerIDs)
}

func (s *GiveawayServiceTestSuite) TestRerollRequiresEnded() {
	running := s.runningGiveaway("user-1")

	s.mockGiveawayRepo.EXPECT().
		GetGiveaway(s.ctx, gomock.Any()).
		Return(running, nil)

	_, err := s.svc.RerollWinners(s.ctx, &RerollWinnersInput{GiveawayID: s.testGiveawayID})
	s.Require().ErrorIs(err, ErrGiveawayNotEnded)
}

func (s *GiveawayServiceTestSuite) TestListGiveawaysActiveOnly() {
	s.mockGiveawayRepo.EXPECT().
		ListGiveaways(s.ctx, &giveawayRepo.ListGiveawaysInput{GuildID: "guild-1"}).
		Return([]*models.Giveaway{
			{ID: "g-3", Ended: false},
			{ID: "g-2", Ended: true},
			{ID: "g-1", Ended: false},
		}, nil)

	output, err := s.svc.ListGiveaways(s.ctx, &ListGiveawaysInput{
		GuildID:    "guild-1",
		ActiveOnly: true,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Giveaways, 2)
	s.Equal("g-3", output.Giveaways[0].ID)
	s.Equal("g-1", output.Giveaways[1].ID)
}

func (s *GiveawayServiceTestSuite) TestGetGiveawayNotFound() {
	s.mockGiveawayRepo.EXPECT().
		GetGiveaway(s.ctx, gomock.Any()).
		Return(nil, giveawayRepo.ErrGiveawayNotFound)

	_, err := s.svc.GetGiveaway(s.ctx, &GetGiveawayInput{GiveawayID: "missing"})
	s.Require().ErrorIs(err, ErrGiveawayNotFound)
}
