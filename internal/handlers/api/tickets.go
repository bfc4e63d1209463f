package api

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/guildkeeper/internal/models"
	ticketSvc "github.com/KirkDiggler/guildkeeper/internal/services/ticket"
)

type setPriorityRequest struct {
	Priority string `json:"priority"`
}

// handleListTickets lists a guild's tickets, newest first. Supports
// ?status=, ?offset= and ?limit= query parameters.
func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	output, err := s.ticketService.ListTickets(r.Context(), &ticketSvc.ListTicketsInput{
		GuildID: r.PathValue("guildID"),
		Status:  models.TicketStatus(r.URL.Query().Get("status")),
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Tickets)
}

// handleGetTicket retrieves one ticket
func (s *Server) handleGetTicket(w http.ResponseWriter, r *http.Request) {
	output, err := s.ticketService.GetTicket(r.Context(), &ticketSvc.GetTicketInput{
		TicketID: r.PathValue("ticketID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Ticket)
}

// handleClaimTicket claims a ticket for the logged-in staff member
func (s *Server) handleClaimTicket(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	output, err := s.ticketService.ClaimTicket(r.Context(), &ticketSvc.ClaimTicketInput{
		TicketID:  r.PathValue("ticketID"),
		ClaimerID: session.UserID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Ticket)
}

// handleCloseTicket closes a ticket as the logged-in staff member
func (s *Server) handleCloseTicket(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	output, err := s.ticketService.CloseTicket(r.Context(), &ticketSvc.CloseTicketInput{
		TicketID: r.PathValue("ticketID"),
		ClosedBy: session.UserID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Ticket)
}

// handleSetPriority updates a ticket's priority
func (s *Server) handleSetPriority(w http.ResponseWriter, r *http.Request) {
	var req setPriorityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, ticketSvc.ErrInvalidPriority)
		return
	}

	output, err := s.ticketService.SetPriority(r.Context(), &ticketSvc.SetPriorityInput{
		TicketID: r.PathValue("ticketID"),
		Priority: models.TicketPriority(req.Priority),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Ticket)
}
