package api

import (
	"net/http"

	"github.com/KirkDiggler/guildkeeper/internal/models"
	"github.com/KirkDiggler/guildkeeper/internal/relay"
	giveawaySvc "github.com/KirkDiggler/guildkeeper/internal/services/giveaway"
	moderationSvc "github.com/KirkDiggler/guildkeeper/internal/services/moderation"
	ticketSvc "github.com/KirkDiggler/guildkeeper/internal/services/ticket"
)

type announceRequest struct {
	ChannelID string `json:"channel_id"`
	Message   string `json:"message"`
}

type createChannelRequest struct {
	Name string `json:"name"`
}

type botCreateTicketRequest struct {
	GuildID   string `json:"guild_id"`
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
	Category  string `json:"category,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Priority  string `json:"priority,omitempty"`
}

type botAddWarnRequest struct {
	GuildID     string `json:"guild_id"`
	UserID      string `json:"user_id"`
	ModeratorID string `json:"moderator_id"`
	Reason      string `json:"reason"`
}

type botEnterGiveawayRequest struct {
	UserID string `json:"user_id"`
}

type botAddXPRequest struct {
	GuildID string `json:"guild_id"`
	UserID  string `json:"user_id"`
	Amount  int64  `json:"amount"`
}

// requiresBotResponse tells the dashboard the operation was recorded but
// only the bot process can complete it
type requiresBotResponse struct {
	RequiresBot bool          `json:"requires_bot"`
	Action      *relay.Action `json:"action"`
}

// handleAnnounce queues a message for the bot to send
func (s *Server) handleAnnounce(w http.ResponseWriter, r *http.Request) {
	var req announceRequest
	if err := decodeJSON(r, &req); err != nil || req.Message == "" {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "message is required"})
		return
	}

	action := &relay.Action{
		Type:    relay.ActionMessageSend,
		GuildID: r.PathValue("guildID"),
		Payload: map[string]any{
			"channel_id": req.ChannelID,
			"message":    req.Message,
		},
	}
	s.relayQueue.Push(action)

	respondJSON(w, http.StatusAccepted, requiresBotResponse{RequiresBot: true, Action: action})
}

// handleCreateChannel queues a channel creation for the bot
func (s *Server) handleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var req createChannelRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "name is required"})
		return
	}

	action := &relay.Action{
		Type:    relay.ActionChannelCreate,
		GuildID: r.PathValue("guildID"),
		Payload: map[string]any{
			"name": req.Name,
		},
	}
	s.relayQueue.Push(action)

	respondJSON(w, http.StatusAccepted, requiresBotResponse{RequiresBot: true, Action: action})
}

// handleBotCreateTicket records a ticket the bot observed being opened
func (s *Server) handleBotCreateTicket(w http.ResponseWriter, r *http.Request) {
	var req botCreateTicketRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, ticketSvc.ErrMissingGuildID)
		return
	}

	output, err := s.ticketService.CreateTicket(r.Context(), &ticketSvc.CreateTicketInput{
		GuildID:   req.GuildID,
		UserID:    req.UserID,
		ChannelID: req.ChannelID,
		Category:  req.Category,
		Subject:   req.Subject,
		Priority:  models.TicketPriority(req.Priority),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Ticket)
}

// handleBotAddWarn records a warning issued through the bot
func (s *Server) handleBotAddWarn(w http.ResponseWriter, r *http.Request) {
	var req botAddWarnRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, moderationSvc.ErrMissingGuildID)
		return
	}

	output, err := s.moderationService.AddWarn(r.Context(), &moderationSvc.AddWarnInput{
		GuildID:     req.GuildID,
		UserID:      req.UserID,
		ModeratorID: req.ModeratorID,
		Reason:      req.Reason,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Warn)
}

// handleBotEnterGiveaway records a giveaway entry the bot observed
func (s *Server) handleBotEnterGiveaway(w http.ResponseWriter, r *http.Request) {
	var req botEnterGiveawayRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, giveawaySvc.ErrMissingUserID)
		return
	}

	output, err := s.giveawayService.EnterGiveaway(r.Context(), &giveawaySvc.EnterGiveawayInput{
		GiveawayID: r.PathValue("giveawayID"),
		UserID:     req.UserID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"already_entered": output.AlreadyEntered})
}

// handleBotAddXP grants XP for bot-observed activity
func (s *Server) handleBotAddXP(w http.ResponseWriter, r *http.Request) {
	var req botAddXPRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, moderationSvc.ErrMissingGuildID)
		return
	}

	output, err := s.moderationService.AddXP(r.Context(), &moderationSvc.AddXPInput{
		GuildID: req.GuildID,
		UserID:  req.UserID,
		Amount:  req.Amount,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"total": output.Total})
}

// handleBotDrainActions hands the bot everything queued since its last poll
func (s *Server) handleBotDrainActions(w http.ResponseWriter, _ *http.Request) {
	actions := s.relayQueue.Drain()
	if actions == nil {
		actions = []*relay.Action{}
	}

	respondJSON(w, http.StatusOK, map[string][]*relay.Action{"actions": actions})
}
