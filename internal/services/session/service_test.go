package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/guildkeeper/internal/common/clock/mocks"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	sessionRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/guildkeeper/internal/repositories/session/mocks"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockClock       *clockMocks.MockClock
	svc             Service
	ctx             context.Context

	testTime time.Time
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	svc, err := NewService(&Config{
		SessionRepo: s.mockSessionRepo,
		Clock:       s.mockClock,
		TTL:         24 * time.Hour,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) TestStartSession() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	var savedToken string
	s.mockSessionRepo.EXPECT().
		CreateSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.CreateSessionInput) error {
			savedToken = input.Session.Token
			s.Equal("user-1", input.Session.UserID)
			s.True(s.testTime.Add(24 * time.Hour).Equal(input.Session.ExpiresAt))
			return nil
		})

	output, err := s.svc.StartSession(s.ctx, &StartSessionInput{
		UserID:      "user-1",
		Username:    "gamer",
		AccessToken: "oauth-token",
	})
	s.Require().NoError(err)

	// 32 bytes of entropy, hex encoded
	s.Len(output.Session.Token, 64)
	s.Equal(savedToken, output.Session.Token)
}

func (s *SessionServiceTestSuite) TestStartSessionTokensAreUnique() {
	s.mockClock.EXPECT().Now().Return(s.testTime).Times(2)
	s.mockSessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).Return(nil).Times(2)

	first, err := s.svc.StartSession(s.ctx, &StartSessionInput{UserID: "user-1"})
	s.Require().NoError(err)

	second, err := s.svc.StartSession(s.ctx, &StartSessionInput{UserID: "user-1"})
	s.Require().NoError(err)

	s.NotEqual(first.Session.Token, second.Session.Token)
}

func (s *SessionServiceTestSuite) TestStartSessionRequiresUserID() {
	_, err := s.svc.StartSession(s.ctx, &StartSessionInput{})
	s.Require().ErrorIs(err, ErrMissingUserID)
}

func (s *SessionServiceTestSuite) TestResolveSession() {
	session := &models.Session{
		Token:     "tok-1",
		UserID:    "user-1",
		ExpiresAt: s.testTime.Add(time.Hour),
	}

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{Token: "tok-1"}).
		Return(session, nil)

	output, err := s.svc.ResolveSession(s.ctx, &ResolveSessionInput{Token: "tok-1"})
	s.Require().NoError(err)
	s.Equal("user-1", output.Session.UserID)
}

func (s *SessionServiceTestSuite) TestResolveSessionExpiredLooksLikeNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionExpired)

	_, err := s.svc.ResolveSession(s.ctx, &ResolveSessionInput{Token: "tok-old"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestResolveSessionUnknownToken() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.svc.ResolveSession(s.ctx, &ResolveSessionInput{Token: "nope"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestRevokeSession() {
	s.mockSessionRepo.EXPECT().
		DeleteSession(s.ctx, &sessionRepo.DeleteSessionInput{Token: "tok-1"}).
		Return(nil)

	err := s.svc.RevokeSession(s.ctx, &RevokeSessionInput{Token: "tok-1"})
	s.Require().NoError(err)
}
