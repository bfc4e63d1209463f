package moderation

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/common/uuid"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	memberRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/member"
	punishmentRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/punishment"
)

// service implements the Service interface
type service struct {
	punishmentRepo punishmentRepo.Repository
	memberRepo     memberRepo.Repository
	eventBus       events.Publisher
	clock          clock.Clock
	uuidGenerator  uuid.UUID
}

// NewService creates a new moderation service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PunishmentRepo == nil {
		return nil, ErrNilPunishmentRepo
	}

	if cfg.MemberRepo == nil {
		return nil, ErrNilMemberRepo
	}

	if cfg.EventBus == nil {
		return nil, ErrNilEventBus
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		punishmentRepo: cfg.PunishmentRepo,
		memberRepo:     cfg.MemberRepo,
		eventBus:       cfg.EventBus,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
	}, nil
}

// AddTempPunishment issues a temporary ban or mute
func (s *service) AddTempPunishment(ctx context.Context, input *AddTempPunishmentInput) (*AddTempPunishmentOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if !models.ValidPunishmentType(input.Type) {
		return nil, ErrInvalidPunishmentType
	}

	now := s.clock.Now()
	if !input.ExpiresAt.After(now) {
		return nil, ErrInvalidExpiry
	}

	punishment := &models.TempPunishment{
		ID:        s.uuidGenerator.NewUUID(),
		GuildID:   input.GuildID,
		UserID:    input.UserID,
		Type:      input.Type,
		ExpiresAt: input.ExpiresAt,
		CreatedAt: now,
	}

	if err := s.punishmentRepo.CreatePunishment(ctx, &punishmentRepo.CreatePunishmentInput{
		Punishment: punishment,
	}); err != nil {
		return nil, fmt.Errorf("failed to create punishment: %w", err)
	}

	s.eventBus.Publish(events.NewDashboardLog(input.GuildID, "punishment_add", input.ModeratorID,
		fmt.Sprintf("temp %s issued for %s", punishment.Type, punishment.UserID)))

	return &AddTempPunishmentOutput{Punishment: punishment}, nil
}

// ListPunishments retrieves a guild's active punishments
func (s *service) ListPunishments(ctx context.Context, input *ListPunishmentsInput) (*ListPunishmentsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	punishments, err := s.punishmentRepo.ListPunishments(ctx, &punishmentRepo.ListPunishmentsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	return &ListPunishmentsOutput{Punishments: punishments}, nil
}

// AddWarn records a warning against a member
func (s *service) AddWarn(ctx context.Context, input *AddWarnInput) (*AddWarnOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if input.ModeratorID == "" {
		return nil, ErrMissingModeratorID
	}

	if strings.TrimSpace(input.Reason) == "" {
		return nil, ErrMissingReason
	}

	warn := &models.Warn{
		ID:          s.uuidGenerator.NewUUID(),
		GuildID:     input.GuildID,
		UserID:      input.UserID,
		ModeratorID: input.ModeratorID,
		Reason:      input.Reason,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.memberRepo.AddWarn(ctx, &memberRepo.AddWarnInput{
		Warn: warn,
	}); err != nil {
		return nil, fmt.Errorf("failed to add warn: %w", err)
	}

	s.eventBus.Publish(events.NewDashboardLog(input.GuildID, "warn_add", input.ModeratorID,
		fmt.Sprintf("warning issued for %s: %s", warn.UserID, warn.Reason)))

	return &AddWarnOutput{Warn: warn}, nil
}

// ListWarns retrieves a member's warnings, newest first
func (s *service) ListWarns(ctx context.Context, input *ListWarnsInput) (*ListWarnsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	warns, err := s.memberRepo.ListWarns(ctx, &memberRepo.ListWarnsInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &ListWarnsOutput{Warns: warns}, nil
}

// AddXP grants XP to a member and returns their new total
func (s *service) AddXP(ctx context.Context, input *AddXPInput) (*AddXPOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidXPAmount
	}

	total, err := s.memberRepo.AddXP(ctx, &memberRepo.AddXPInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
		Amount:  input.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add XP: %w", err)
	}

	return &AddXPOutput{Total: total}, nil
}

// Leaderboard retrieves the guild's top members by XP
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	entries, err := s.memberRepo.Leaderboard(ctx, &memberRepo.LeaderboardInput{
		GuildID: input.GuildID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &LeaderboardOutput{Entries: entries}, nil
}
