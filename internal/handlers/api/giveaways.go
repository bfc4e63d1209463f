package api

import (
	"net/http"
	"time"

	giveawaySvc "github.com/KirkDiggler/guildkeeper/internal/services/giveaway"
)

type createGiveawayRequest struct {
	ChannelID    string    `json:"channel_id"`
	Prize        string    `json:"prize"`
	Winners      int       `json:"winners"`
	RequiredRole string    `json:"required_role,omitempty"`
	EndsAt       time.Time `json:"ends_at"`
}

// handleListGiveaways lists a guild's giveaways, newest first. Supports
// ?active=true to show only running giveaways.
func (s *Server) handleListGiveaways(w http.ResponseWriter, r *http.Request) {
	output, err := s.giveawayService.ListGiveaways(r.Context(), &giveawaySvc.ListGiveawaysInput{
		GuildID:    r.PathValue("guildID"),
		ActiveOnly: r.URL.Query().Get("active") == "true",
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Giveaways)
}

// handleCreateGiveaway starts a new giveaway hosted by the logged-in user
func (s *Server) handleCreateGiveaway(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	var req createGiveawayRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, giveawaySvc.ErrMissingPrize)
		return
	}

	output, err := s.giveawayService.CreateGiveaway(r.Context(), &giveawaySvc.CreateGiveawayInput{
		GuildID:      r.PathValue("guildID"),
		ChannelID:    req.ChannelID,
		HostID:       session.UserID,
		Prize:        req.Prize,
		Winners:      req.Winners,
		RequiredRole: req.RequiredRole,
		EndsAt:       req.EndsAt,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Giveaway)
}

// handleGetGiveaway retrieves one giveaway
func (s *Server) handleGetGiveaway(w http.ResponseWriter, r *http.Request) {
	output, err := s.giveawayService.GetGiveaway(r.Context(), &giveawaySvc.GetGiveawayInput{
		GiveawayID: r.PathValue("giveawayID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Giveaway)
}

// handleEndGiveaway ends a giveaway ahead of schedule
func (s *Server) handleEndGiveaway(w http.ResponseWriter, r *http.Request) {
	output, err := s.giveawayService.EndGiveaway(r.Context(), &giveawaySvc.EndGiveawayInput{
		GiveawayID: r.PathValue("giveawayID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Giveaway)
}

// handleRerollGiveaway draws a fresh set of winners
func (s *Server) handleRerollGiveaway(w http.ResponseWriter, r *http.Request) {
	output, err := s.giveawayService.RerollWinners(r.Context(), &giveawaySvc.RerollWinnersInput{
		GiveawayID: r.PathValue("giveawayID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Giveaway)
}
