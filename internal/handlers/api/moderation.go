package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/models"
	moderationSvc "github.com/KirkDiggler/guildkeeper/internal/services/moderation"
	reminderSvc "github.com/KirkDiggler/guildkeeper/internal/services/reminder"
)

type addPunishmentRequest struct {
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expires_at"`
}

type addReminderRequest struct {
	GuildID   string    `json:"guild_id"`
	ChannelID string    `json:"channel_id"`
	Message   string    `json:"message"`
	RemindAt  time.Time `json:"remind_at"`
}

// handleListPunishments lists a guild's active punishments
func (s *Server) handleListPunishments(w http.ResponseWriter, r *http.Request) {
	output, err := s.moderationService.ListPunishments(r.Context(), &moderationSvc.ListPunishmentsInput{
		GuildID: r.PathValue("guildID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Punishments)
}

// handleAddPunishment issues a temporary ban or mute
func (s *Server) handleAddPunishment(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	var req addPunishmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, moderationSvc.ErrInvalidPunishmentType)
		return
	}

	output, err := s.moderationService.AddTempPunishment(r.Context(), &moderationSvc.AddTempPunishmentInput{
		GuildID:     r.PathValue("guildID"),
		UserID:      req.UserID,
		ModeratorID: session.UserID,
		Type:        models.PunishmentType(req.Type),
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Punishment)
}

// handleListWarns lists a member's warnings
func (s *Server) handleListWarns(w http.ResponseWriter, r *http.Request) {
	output, err := s.moderationService.ListWarns(r.Context(), &moderationSvc.ListWarnsInput{
		GuildID: r.PathValue("guildID"),
		UserID:  r.PathValue("userID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Warns)
}

// handleLeaderboard returns the guild's top members by XP
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			limit = parsed
		}
	}

	output, err := s.moderationService.Leaderboard(r.Context(), &moderationSvc.LeaderboardInput{
		GuildID: r.PathValue("guildID"),
		Limit:   limit,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Entries)
}

// handleAddReminder schedules a reminder for the logged-in user
func (s *Server) handleAddReminder(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	var req addReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, reminderSvc.ErrMissingMessage)
		return
	}

	output, err := s.reminderService.AddReminder(r.Context(), &reminderSvc.AddReminderInput{
		UserID:    session.UserID,
		GuildID:   req.GuildID,
		ChannelID: req.ChannelID,
		Message:   req.Message,
		RemindAt:  req.RemindAt,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Reminder)
}

// handleListReminders lists the logged-in user's pending reminders
func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	output, err := s.reminderService.ListReminders(r.Context(), &reminderSvc.ListRemindersInput{
		UserID: session.UserID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Reminders)
}
