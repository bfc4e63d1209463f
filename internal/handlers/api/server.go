package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/KirkDiggler/guildkeeper/internal/auth"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	"github.com/KirkDiggler/guildkeeper/internal/relay"
	giveawaySvc "github.com/KirkDiggler/guildkeeper/internal/services/giveaway"
	moderationSvc "github.com/KirkDiggler/guildkeeper/internal/services/moderation"
	reminderSvc "github.com/KirkDiggler/guildkeeper/internal/services/reminder"
	sessionSvc "github.com/KirkDiggler/guildkeeper/internal/services/session"
	ticketSvc "github.com/KirkDiggler/guildkeeper/internal/services/ticket"
)

// sessionCookie is the name of the dashboard session cookie
const sessionCookie = "session_id"

// Config holds configuration for the API server
type Config struct {
	// Service dependencies
	TicketService     ticketSvc.Service
	GiveawayService   giveawaySvc.Service
	SessionService    sessionSvc.Service
	ModerationService moderationSvc.Service
	ReminderService   reminderSvc.Service

	// OAuthClient performs the Discord login exchange
	OAuthClient *auth.Client

	// EventBus feeds the WebSocket fan-out
	EventBus *events.Bus

	// RelayQueue holds pending bot actions
	RelayQueue *relay.Queue

	// BotAPIKey authenticates the bot process
	BotAPIKey string

	// WebURL is the dashboard origin, used for post-login redirects
	WebURL string
}

// Server is the HTTP and WebSocket surface of the dashboard
type Server struct {
	ticketService     ticketSvc.Service
	giveawayService   giveawaySvc.Service
	sessionService    sessionSvc.Service
	moderationService moderationSvc.Service
	reminderService   reminderSvc.Service
	oauthClient       *auth.Client
	eventBus          *events.Bus
	relayQueue        *relay.Queue
	botAPIKey         string
	webURL            string
}

// NewServer creates a new API server
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TicketService == nil || cfg.GiveawayService == nil || cfg.SessionService == nil ||
		cfg.ModerationService == nil || cfg.ReminderService == nil {
		return nil, errors.New("all services are required")
	}

	if cfg.OAuthClient == nil {
		return nil, errors.New("oauth client cannot be nil")
	}

	if cfg.EventBus == nil {
		return nil, errors.New("event bus cannot be nil")
	}

	if cfg.RelayQueue == nil {
		return nil, errors.New("relay queue cannot be nil")
	}

	if cfg.BotAPIKey == "" {
		return nil, errors.New("bot API key cannot be empty")
	}

	return &Server{
		ticketService:     cfg.TicketService,
		giveawayService:   cfg.GiveawayService,
		sessionService:    cfg.SessionService,
		moderationService: cfg.ModerationService,
		reminderService:   cfg.ReminderService,
		oauthClient:       cfg.OAuthClient,
		eventBus:          cfg.EventBus,
		relayQueue:        cfg.RelayQueue,
		botAPIKey:         cfg.BotAPIKey,
		webURL:            cfg.WebURL,
	}, nil
}

// Routes builds the request router
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("GET /api/v1/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/v1/auth/callback", s.handleCallback)
	mux.HandleFunc("POST /api/v1/auth/logout", s.handleLogout)
	mux.HandleFunc("GET /api/v1/auth/me", s.withSession(s.handleMe))

	// Tickets
	mux.HandleFunc("GET /api/v1/guilds/{guildID}/tickets", s.withSession(s.handleListTickets))
	mux.HandleFunc("GET /api/v1/tickets/{ticketID}", s.withSession(s.handleGetTicket))
	mux.HandleFunc("POST /api/v1/tickets/{ticketID}/claim", s.withSession(s.handleClaimTicket))
	mux.HandleFunc("POST /api/v1/tickets/{ticketID}/close", s.withSession(s.handleCloseTicket))
	mux.HandleFunc("PUT /api/v1/tickets/{ticketID}/priority", s.withSession(s.handleSetPriority))

	// Giveaways
	mux.HandleFunc("GET /api/v1/guilds/{guildID}/giveaways", s.withSession(s.handleListGiveaways))
	mux.HandleFunc("POST /api/v1/guilds/{guildID}/giveaways", s.withSession(s.handleCreateGiveaway))
	mux.HandleFunc("GET /api/v1/giveaways/{giveawayID}", s.withSession(s.handleGetGiveaway))
	mux.HandleFunc("POST /api/v1/giveaways/{giveawayID}/end", s.withSession(s.handleEndGiveaway))
	mux.HandleFunc("POST /api/v1/giveaways/{giveawayID}/reroll", s.withSession(s.handleRerollGiveaway))

	// Moderation
	mux.HandleFunc("GET /api/v1/guilds/{guildID}/punishments", s.withSession(s.handleListPunishments))
	mux.HandleFunc("POST /api/v1/guilds/{guildID}/punishments", s.withSession(s.handleAddPunishment))
	mux.HandleFunc("GET /api/v1/guilds/{guildID}/users/{userID}/warns", s.withSession(s.handleListWarns))
	mux.HandleFunc("GET /api/v1/guilds/{guildID}/leaderboard", s.withSession(s.handleLeaderboard))

	// Reminders
	mux.HandleFunc("POST /api/v1/reminders", s.withSession(s.handleAddReminder))
	mux.HandleFunc("GET /api/v1/reminders", s.withSession(s.handleListReminders))

	// Operations only the bot process can complete
	mux.HandleFunc("POST /api/v1/guilds/{guildID}/announce", s.withSession(s.handleAnnounce))
	mux.HandleFunc("POST /api/v1/guilds/{guildID}/channels", s.withSession(s.handleCreateChannel))

	// Bot relay
	mux.HandleFunc("POST /api/v1/bot/tickets", s.withBotKey(s.handleBotCreateTicket))
	mux.HandleFunc("POST /api/v1/bot/warns", s.withBotKey(s.handleBotAddWarn))
	mux.HandleFunc("POST /api/v1/bot/giveaways/{giveawayID}/enter", s.withBotKey(s.handleBotEnterGiveaway))
	mux.HandleFunc("POST /api/v1/bot/xp", s.withBotKey(s.handleBotAddXP))
	mux.HandleFunc("GET /api/v1/bot/actions", s.withBotKey(s.handleBotDrainActions))

	// Live updates
	mux.HandleFunc("GET /api/v1/ws", s.handleWS)

	return mux
}

type contextKey string

const sessionContextKey contextKey = "session"

// withSession requires a valid session cookie and stashes the session on the
// request context
func (s *Server) withSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.resolveSession(r)
		if err != nil {
			respondError(w, errUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next(w, r.WithContext(ctx))
	}
}

// withBotKey requires the bot's API key header
func (s *Server) withBotKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != s.botAPIKey {
			respondError(w, errUnauthorized)
			return
		}

		next(w, r)
	}
}

// resolveSession reads the session cookie and resolves it to a session
func (s *Server) resolveSession(r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, errUnauthorized
	}

	output, err := s.sessionService.ResolveSession(r.Context(), &sessionSvc.ResolveSessionInput{
		Token: cookie.Value,
	})
	if err != nil {
		return nil, errUnauthorized
	}

	return output.Session, nil
}

// sessionFrom pulls the session stashed by withSession
func sessionFrom(r *http.Request) *models.Session {
	session, _ := r.Context().Value(sessionContextKey).(*models.Session)
	return session
}
