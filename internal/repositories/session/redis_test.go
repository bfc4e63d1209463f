package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

// fakeClock lets tests move time forward without sleeping
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	clock  *fakeClock
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.clock = &fakeClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newSession(token string, ttl time.Duration) *models.Session {
	return &models.Session{
		Token:       token,
		UserID:      "user-1",
		Username:    "gamer",
		AccessToken: "oauth-token",
		ExpiresAt:   s.clock.now.Add(ttl),
		CreatedAt:   s.clock.now,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	ctx := context.Background()

	sess := s.newSession("tok-1", time.Hour)
	err := s.repo.CreateSession(ctx, &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	got, err := s.repo.GetSession(ctx, &GetSessionInput{Token: "tok-1"})
	s.Require().NoError(err)
	s.Equal("user-1", got.UserID)
	s.Equal("gamer", got.Username)
	s.True(sess.ExpiresAt.Equal(got.ExpiresAt))
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{Token: "missing"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestExpiredSessionIsPurgedOnLookup() {
	ctx := context.Background()

	sess := s.newSession("tok-exp", time.Hour)
	err := s.repo.CreateSession(ctx, &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(time.Hour + time.Second)

	_, err = s.repo.GetSession(ctx, &GetSessionInput{Token: "tok-exp"})
	s.Require().ErrorIs(err, ErrSessionExpired)

	// The row is gone: a second lookup reports not-found, not expired
	_, err = s.repo.GetSession(ctx, &GetSessionInput{Token: "tok-exp"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSessionValidUpToExpiry() {
	ctx := context.Background()

	sess := s.newSession("tok-edge", time.Hour)
	err := s.repo.CreateSession(ctx, &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(time.Hour - time.Second)

	_, err = s.repo.GetSession(ctx, &GetSessionInput{Token: "tok-edge"})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCreateSessionRejectsPastExpiry() {
	sess := s.newSession("tok-past", -time.Minute)
	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: sess})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	ctx := context.Background()

	sess := s.newSession("tok-del", time.Hour)
	err := s.repo.CreateSession(ctx, &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	err = s.repo.DeleteSession(ctx, &DeleteSessionInput{Token: "tok-del"})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(ctx, &GetSessionInput{Token: "tok-del"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteAbsentSessionIsNoOp() {
	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{Token: "never-existed"})
	s.Require().NoError(err)
}
