package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	giveawaySvc "github.com/KirkDiggler/guildkeeper/internal/services/giveaway"
	moderationSvc "github.com/KirkDiggler/guildkeeper/internal/services/moderation"
	reminderSvc "github.com/KirkDiggler/guildkeeper/internal/services/reminder"
	sessionSvc "github.com/KirkDiggler/guildkeeper/internal/services/session"
	ticketSvc "github.com/KirkDiggler/guildkeeper/internal/services/ticket"
)

var errUnauthorized = errors.New("unauthorized")

type errorBody struct {
	Error string `json:"error"`

	// ClaimedBy is set only on claim conflicts so the caller can show who won
	ClaimedBy string `json:"claimed_by,omitempty"`
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
}

// respondError maps service errors onto HTTP statuses. Infrastructure
// failures get a generic body: the caller cannot assume whether the mutation
// applied.
func respondError(w http.ResponseWriter, err error) {
	var alreadyClaimed *ticketSvc.AlreadyClaimedError
	if errors.As(err, &alreadyClaimed) {
		respondJSON(w, http.StatusConflict, errorBody{
			Error:     alreadyClaimed.Error(),
			ClaimedBy: alreadyClaimed.ClaimedBy,
		})
		return
	}

	switch {
	case errors.Is(err, errUnauthorized):
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})

	case errors.Is(err, ticketSvc.ErrTicketNotFound),
		errors.Is(err, giveawaySvc.ErrGiveawayNotFound),
		errors.Is(err, sessionSvc.ErrSessionNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})

	case errors.Is(err, ticketSvc.ErrTicketNotOpen),
		errors.Is(err, giveawaySvc.ErrGiveawayEnded),
		errors.Is(err, giveawaySvc.ErrGiveawayNotEnded):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error()})

	case isValidationError(err):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})

	default:
		log.Printf("internal error: %v", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// isValidationError reports whether the error is a rejected input rather
// than a failed operation
func isValidationError(err error) bool {
	validationErrs := []error{
		ticketSvc.ErrInvalidPriority,
		ticketSvc.ErrMissingGuildID,
		ticketSvc.ErrMissingUserID,
		ticketSvc.ErrMissingTicketID,
		ticketSvc.ErrMissingClaimerID,
		giveawaySvc.ErrMissingGuildID,
		giveawaySvc.ErrMissingGiveawayID,
		giveawaySvc.ErrMissingUserID,
		giveawaySvc.ErrMissingPrize,
		giveawaySvc.ErrInvalidWinners,
		giveawaySvc.ErrInvalidEndTime,
		moderationSvc.ErrInvalidPunishmentType,
		moderationSvc.ErrInvalidExpiry,
		moderationSvc.ErrMissingGuildID,
		moderationSvc.ErrMissingUserID,
		moderationSvc.ErrMissingModeratorID,
		moderationSvc.ErrMissingReason,
		moderationSvc.ErrInvalidXPAmount,
		reminderSvc.ErrMissingUserID,
		reminderSvc.ErrMissingMessage,
		reminderSvc.ErrInvalidRemindAt,
	}

	for _, target := range validationErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// decodeJSON parses a request body, limited to a sane size
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	return dec.Decode(v)
}
