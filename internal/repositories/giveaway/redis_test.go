package giveaway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newGiveaway(id string) *models.Giveaway {
	return &models.Giveaway{
		ID:        id,
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		MessageID: "message-1",
		HostID:    "host-1",
		Prize:     "Nitro",
		Winners:   2,
		EndsAt:    s.testNow.Add(time.Hour),
		CreatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetGiveaway() {
	ctx := context.Background()
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: s.newGiveaway("gw-1")}))

	got, err := s.repo.GetGiveaway(ctx, &GetGiveawayInput{GiveawayID: "gw-1"})
	s.Require().NoError(err)
	s.Equal("gw-1", got.ID)
	s.Equal("Nitro", got.Prize)
	s.False(got.Ended)
	s.Empty(got.Participants)
	s.Empty(got.WinnerIDs)
}

func (s *RedisRepositoryTestSuite) TestGetGiveawayNotFound() {
	_, err := s.repo.GetGiveaway(context.Background(), &GetGiveawayInput{GiveawayID: "missing"})
	s.ErrorIs(err, ErrGiveawayNotFound)
}

func (s *RedisRepositoryTestSuite) TestAddParticipantIdempotent() {
	ctx := context.Background()
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: s.newGiveaway("gw-1")}))

	added, err := s.repo.AddParticipant(ctx, &AddParticipantInput{GiveawayID: "gw-1", UserID: "u1"})
	s.Require().NoError(err)
	s.True(added)

	// Entering again is a no-op, not a duplicate
	added, err = s.repo.AddParticipant(ctx, &AddParticipantInput{GiveawayID: "gw-1", UserID: "u1"})
	s.Require().NoError(err)
	s.False(added)

	got, err := s.repo.GetGiveaway(ctx, &GetGiveawayInput{GiveawayID: "gw-1"})
	s.Require().NoError(err)
	s.Equal([]string{"u1"}, got.Participants)
}

func (s *RedisRepositoryTestSuite) TestAddParticipantPreservesEntryOrder() {
	ctx := context.Background()
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: s.newGiveaway("gw-1")}))

	for _, u := range []string{"u1", "u2", "u3"} {
		_, err := s.repo.AddParticipant(ctx, &AddParticipantInput{GiveawayID: "gw-1", UserID: u})
		s.Require().NoError(err)
	}

	got, err := s.repo.GetGiveaway(ctx, &GetGiveawayInput{GiveawayID: "gw-1"})
	s.Require().NoError(err)
	s.Equal([]string{"u1", "u2", "u3"}, got.Participants)
}

func (s *RedisRepositoryTestSuite) TestAddParticipantEndedGiveaway() {
	ctx := context.Background()
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: s.newGiveaway("gw-1")}))
	s.Require().NoError(s.repo.EndGiveaway(ctx, &EndGiveawayInput{GiveawayID: "gw-1"}))

	_, err := s.repo.AddParticipant(ctx, &AddParticipantInput{GiveawayID: "gw-1", UserID: "u1"})
	s.ErrorIs(err, ErrGiveawayEnded)
}

func (s *RedisRepositoryTestSuite) TestAddParticipantNotFound() {
	_, err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{GiveawayID: "missing", UserID: "u1"})
	s.ErrorIs(err, ErrGiveawayNotFound)
}

func (s *RedisRepositoryTestSuite) TestEndGiveawayStoresWinnersAtomically() {
	ctx := context.Background()
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: s.newGiveaway("gw-1")}))
	for _, u := range []string{"u1", "u2", "u3"} {
		_, err := s.repo.AddParticipant(ctx, &AddParticipantInput{GiveawayID: "gw-1", UserID: u})
		s.Require().NoError(err)
	}

	err := s.repo.EndGiveaway(ctx, &EndGiveawayInput{GiveawayID: "gw-1", WinnerIDs: []string{"u2", "u3"}})
	s.Require().NoError(err)

	got, err := s.repo.GetGiveaway(ctx, &GetGiveawayInput{GiveawayID: "gw-1"})
	s.Require().NoError(err)
	s.True(got.Ended)
	s.Equal([]string{"u2", "u3"}, got.WinnerIDs)
	s.Equal([]string{"u1", "u2", "u3"}, got.Participants, "participants unchanged by end")

	// No longer discoverable as due
	due, err := s.repo.ListDue(ctx, &ListDueInput{Now: s.testNow.Add(2 * time.Hour)})
	s.Require().NoError(err)
	s.NotContains(due, "gw-1")
}

func (s *RedisRepositoryTestSuite) TestEndGiveawayTwice() {
	ctx := context.Background()
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: s.newGiveaway("gw-1")}))

	s.Require().NoError(s.repo.EndGiveaway(ctx, &EndGiveawayInput{GiveawayID: "gw-1"}))
	err := s.repo.EndGiveaway(ctx, &EndGiveawayInput{GiveawayID: "gw-1", WinnerIDs: []string{"u9"}})
	s.ErrorIs(err, ErrGiveawayEnded)

	// The losing call must not have touched the winners
	got, err := s.repo.GetGiveaway(ctx, &GetGiveawayInput{GiveawayID: "gw-1"})
	s.Require().NoError(err)
	s.Empty(got.WinnerIDs)
}

func (s *RedisRepositoryTestSuite) TestEndGiveawayConcurrent() {
	ctx := context.Background()
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: s.newGiveaway("gw-1")}))

	const callers = 10
	var (
		wg        sync.WaitGroup
		successes int
		conflicts int
		mu        sync.Mutex
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := s.repo.EndGiveaway(ctx, &EndGiveawayInput{
				GiveawayID: "gw-1",
				WinnerIDs:  []string{fmt.Sprintf("winner-%d", n)},
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrGiveawayEnded):
				conflicts++
			default:
				s.Failf("unexpected error", "%v", err)
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(callers-1, conflicts)
}

func (s *RedisRepositoryTestSuite) TestSetWinnersRequiresEnded() {
	ctx := context.Background()
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: s.newGiveaway("gw-1")}))

	err := s.repo.SetWinners(ctx, &SetWinnersInput{GiveawayID: "gw-1", WinnerIDs: []string{"u1"}})
	s.ErrorIs(err, ErrGiveawayNotEnded)

	s.Require().NoError(s.repo.EndGiveaway(ctx, &EndGiveawayInput{GiveawayID: "gw-1", WinnerIDs: []string{"u1"}}))

	err = s.repo.SetWinners(ctx, &SetWinnersInput{GiveawayID: "gw-1", WinnerIDs: []string{"u2"}})
	s.Require().NoError(err)

	got, err := s.repo.GetGiveaway(ctx, &GetGiveawayInput{GiveawayID: "gw-1"})
	s.Require().NoError(err)
	s.Equal([]string{"u2"}, got.WinnerIDs)
}

func (s *RedisRepositoryTestSuite) TestListDue() {
	ctx := context.Background()

	due := s.newGiveaway("gw-due")
	due.EndsAt = s.testNow.Add(-time.Minute)
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: due}))

	future := s.newGiveaway("gw-future")
	future.EndsAt = s.testNow.Add(time.Hour)
	s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: future}))

	ids, err := s.repo.ListDue(ctx, &ListDueInput{Now: s.testNow})
	s.Require().NoError(err)
	s.Equal([]string{"gw-due"}, ids)
}

func (s *RedisRepositoryTestSuite) TestListGiveawaysNewestFirst() {
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		gw := s.newGiveaway(fmt.Sprintf("gw-%d", i))
		gw.CreatedAt = s.testNow.Add(time.Duration(i) * time.Minute)
		s.Require().NoError(s.repo.CreateGiveaway(ctx, &CreateGiveawayInput{Giveaway: gw}))
	}

	giveaways, err := s.repo.ListGiveaways(ctx, &ListGiveawaysInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().Len(giveaways, 3)
	s.Equal("gw-3", giveaways[0].ID)
	s.Equal("gw-1", giveaways[2].ID)
}
