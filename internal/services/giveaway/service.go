package giveaway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/common/uuid"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	giveawayRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/giveaway"
	"github.com/KirkDiggler/guildkeeper/internal/sampler"
)

// service implements the Service interface
type service struct {
	giveawayRepo  giveawayRepo.Repository
	eventBus      events.Publisher
	sampler       sampler.Sampler
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// NewService creates a new giveaway service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GiveawayRepo == nil {
		return nil, ErrNilGiveawayRepo
	}

	if cfg.EventBus == nil {
		return nil, ErrNilEventBus
	}

	if cfg.Sampler == nil {
		return nil, ErrNilSampler
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		giveawayRepo:  cfg.GiveawayRepo,
		eventBus:      cfg.EventBus,
		sampler:       cfg.Sampler,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateGiveaway starts a new giveaway in a guild channel
func (s *service) CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*CreateGiveawayOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	if strings.TrimSpace(input.Prize) == "" {
		return nil, ErrMissingPrize
	}

	if input.Winners <= 0 {
		return nil, ErrInvalidWinners
	}

	now := s.clock.Now()
	if !input.EndsAt.After(now) {
		return nil, ErrInvalidEndTime
	}

	giveaway := &models.Giveaway{
		ID:           s.uuidGenerator.NewUUID(),
		GuildID:      input.GuildID,
		ChannelID:    input.ChannelID,
		MessageID:    input.MessageID,
		HostID:       input.HostID,
		Prize:        input.Prize,
		Winners:      input.Winners,
		RequiredRole: input.RequiredRole,
		EndsAt:       input.EndsAt,
		CreatedAt:    now,
	}

	if err := s.giveawayRepo.CreateGiveaway(ctx, &giveawayRepo.CreateGiveawayInput{
		Giveaway: giveaway,
	}); err != nil {
		return nil, fmt.Errorf("failed to create giveaway: %w", err)
	}

	s.eventBus.Publish(events.NewDashboardLog(giveaway.GuildID, "giveaway_create", input.HostID,
		fmt.Sprintf("giveaway for %q started", giveaway.Prize)))

	return &CreateGiveawayOutput{Giveaway: giveaway}, nil
}

// GetGiveaway retrieves a giveaway by ID
func (s *service) GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*GetGiveawayOutput, error) {
	if input == nil || input.GiveawayID == "" {
		return nil, ErrMissingGiveawayID
	}

	giveaway, err := s.getGiveaway(ctx, input.GiveawayID)
	if err != nil {
		return nil, err
	}

	return &GetGiveawayOutput{Giveaway: giveaway}, nil
}

// ListGiveaways retrieves all giveaways for a guild, newest first
func (s *service) ListGiveaways(ctx context.Context, input *ListGiveawaysInput) (*ListGiveawaysOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	giveaways, err := s.giveawayRepo.ListGiveaways(ctx, &giveawayRepo.ListGiveawaysInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	if input.ActiveOnly {
		active := make([]*models.Giveaway, 0, len(giveaways))
		for _, g := range giveaways {
			if !g.Ended {
				active = append(active, g)
			}
		}
		giveaways = active
	}

	return &ListGiveawaysOutput{Giveaways: giveaways}, nil
}

// EnterGiveaway records a user's entry
func (s *service) EnterGiveaway(ctx context.Context, input *EnterGiveawayInput) (*EnterGiveawayOutput, error) {
	if input == nil || input.GiveawayID == "" {
		return nil, ErrMissingGiveawayID
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	added, err := s.giveawayRepo.AddParticipant(ctx, &giveawayRepo.AddParticipantInput{
		GiveawayID: input.GiveawayID,
		UserID:     input.UserID,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrGiveawayNotFound) {
			return nil, ErrGiveawayNotFound
		}
		if errors.Is(err, giveawayRepo.ErrGiveawayEnded) {
			return nil, ErrGiveawayEnded
		}
		return nil, err
	}

	return &EnterGiveawayOutput{AlreadyEntered: !added}, nil
}

// EndGiveaway draws winners and finishes the giveaway. Winners are sampled
// from a pre-flip read of the participant list; the atomic ended flip in the
// store is what decides the race, so a loser's sampled winners are discarded.
func (s *service) EndGiveaway(ctx context.Context, input *EndGiveawayInput) (*EndGiveawayOutput, error) {
	if input == nil || input.GiveawayID == "" {
		return nil, ErrMissingGiveawayID
	}

	giveaway, err := s.getGiveaway(ctx, input.GiveawayID)
	if err != nil {
		return nil, err
	}

	if giveaway.Ended {
		return nil, ErrGiveawayEnded
	}

	winners := s.sampler.Pick(giveaway.Participants, giveaway.Winners)

	err = s.giveawayRepo.EndGiveaway(ctx, &giveawayRepo.EndGiveawayInput{
		GiveawayID: input.GiveawayID,
		WinnerIDs:  winners,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrGiveawayNotFound) {
			return nil, ErrGiveawayNotFound
		}
		if errors.Is(err, giveawayRepo.ErrGiveawayEnded) {
			return nil, ErrGiveawayEnded
		}
		return nil, err
	}

	ended, err := s.getGiveaway(ctx, input.GiveawayID)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(events.NewDashboardLog(ended.GuildID, "giveaway_end", ended.HostID,
		fmt.Sprintf("giveaway for %q ended with %d winners", ended.Prize, len(ended.WinnerIDs))))

	return &EndGiveawayOutput{Giveaway: ended}, nil
}

// RerollWinners draws a fresh set of winners for an ended giveaway
func (s *service) RerollWinners(ctx context.Context, input *RerollWinnersInput) (*RerollWinnersOutput, error) {
	if input == nil || input.GiveawayID == "" {
		return nil, ErrMissingGiveawayID
	}

	giveaway, err := s.getGiveaway(ctx, input.GiveawayID)
	if err != nil {
		return nil, err
	}

	if !giveaway.Ended {
		return nil, ErrGiveawayNotEnded
	}

	winners := s.sampler.Pick(giveaway.Participants, giveaway.Winners)

	err = s.giveawayRepo.SetWinners(ctx, &giveawayRepo.SetWinnersInput{
		GiveawayID: input.GiveawayID,
		WinnerIDs:  winners,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrGiveawayNotFound) {
			return nil, ErrGiveawayNotFound
		}
		if errors.Is(err, giveawayRepo.ErrGiveawayNotEnded) {
			return nil, ErrGiveawayNotEnded
		}
		return nil, err
	}

	rerolled, err := s.getGiveaway(ctx, input.GiveawayID)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(events.NewDashboardLog(rerolled.GuildID, "giveaway_reroll", rerolled.HostID,
		fmt.Sprintf("giveaway for %q rerolled", rerolled.Prize)))

	return &RerollWinnersOutput{Giveaway: rerolled}, nil
}

func (s *service) getGiveaway(ctx context.Context, giveawayID string) (*models.Giveaway, error) {
	giveaway, err := s.giveawayRepo.GetGiveaway(ctx, &giveawayRepo.GetGiveawayInput{
		GiveawayID: giveawayID,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrGiveawayNotFound) {
			return nil, ErrGiveawayNotFound
		}
		return nil, err
	}

	return giveaway, nil
}
