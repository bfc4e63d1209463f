package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	sessionRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/session"
)

const (
	defaultTTL = 7 * 24 * time.Hour

	// tokenBytes of entropy per session token, hex encoded on the wire
	tokenBytes = 32
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	ttl         time.Duration
}

// NewService creates a new session service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		ttl:         ttl,
	}, nil
}

// StartSession mints an opaque token and persists a new session
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}

	now := s.clock.Now()
	session := &models.Session{
		Token:       token,
		UserID:      input.UserID,
		Username:    input.Username,
		Avatar:      input.Avatar,
		AccessToken: input.AccessToken,
		ExpiresAt:   now.Add(s.ttl),
		CreatedAt:   now,
	}

	if err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: session,
	}); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &StartSessionOutput{Session: session}, nil
}

// ResolveSession looks up the session behind a token
func (s *service) ResolveSession(ctx context.Context, input *ResolveSessionInput) (*ResolveSessionOutput, error) {
	if input == nil || input.Token == "" {
		return nil, ErrMissingToken
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		Token: input.Token,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) || errors.Is(err, sessionRepo.ErrSessionExpired) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &ResolveSessionOutput{Session: session}, nil
}

// RevokeSession ends a session
func (s *service) RevokeSession(ctx context.Context, input *RevokeSessionInput) error {
	if input == nil || input.Token == "" {
		return ErrMissingToken
	}

	return s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		Token: input.Token,
	})
}

// newToken returns a hex-encoded random token
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
