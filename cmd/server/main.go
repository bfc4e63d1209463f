package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/guildkeeper/internal/auth"
	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/common/uuid"
	"github.com/KirkDiggler/guildkeeper/internal/config"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/handlers/api"
	"github.com/KirkDiggler/guildkeeper/internal/relay"
	giveawayRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/giveaway"
	memberRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/member"
	punishmentRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/punishment"
	reminderRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/reminder"
	sessionRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/session"
	ticketRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/ticket"
	"github.com/KirkDiggler/guildkeeper/internal/sampler"
	giveawayService "github.com/KirkDiggler/guildkeeper/internal/services/giveaway"
	moderationService "github.com/KirkDiggler/guildkeeper/internal/services/moderation"
	reminderService "github.com/KirkDiggler/guildkeeper/internal/services/reminder"
	"github.com/KirkDiggler/guildkeeper/internal/services/scheduler"
	sessionService "github.com/KirkDiggler/guildkeeper/internal/services/session"
	ticketService "github.com/KirkDiggler/guildkeeper/internal/services/ticket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	systemClock := &clock.DefaultClock{}
	uuidGenerator := uuid.New()

	// Initialize repositories
	tickets, err := ticketRepo.NewRedis(&ticketRepo.Config{
		RedisClient: redisClient,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create ticket repository: %v", err)
	}

	giveaways, err := giveawayRepo.NewRedis(&giveawayRepo.Config{
		RedisClient: redisClient,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create giveaway repository: %v", err)
	}

	punishments, err := punishmentRepo.NewRedis(&punishmentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create punishment repository: %v", err)
	}

	reminders, err := reminderRepo.NewRedis(&reminderRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create reminder repository: %v", err)
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	members, err := memberRepo.NewRedis(&memberRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create member repository: %v", err)
	}

	// Shared in-process plumbing
	eventBus := events.New(&events.Config{BufferSize: cfg.EventBufferSize})
	relayQueue := relay.NewQueue(&relay.Config{Capacity: cfg.RelayCapacity})
	winnerSampler := sampler.New(nil)

	// Initialize services
	ticketSvc, err := ticketService.NewService(&ticketService.Config{
		TicketRepo:    tickets,
		EventBus:      eventBus,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create ticket service: %v", err)
	}

	giveawaySvc, err := giveawayService.NewService(&giveawayService.Config{
		GiveawayRepo:  giveaways,
		EventBus:      eventBus,
		Sampler:       winnerSampler,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create giveaway service: %v", err)
	}

	sessionSvc, err := sessionService.NewService(&sessionService.Config{
		SessionRepo: sessions,
		Clock:       systemClock,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	moderationSvc, err := moderationService.NewService(&moderationService.Config{
		PunishmentRepo: punishments,
		MemberRepo:     members,
		EventBus:       eventBus,
		Clock:          systemClock,
		UUIDGenerator:  uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create moderation service: %v", err)
	}

	reminderSvc, err := reminderService.NewService(&reminderService.Config{
		ReminderRepo:  reminders,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create reminder service: %v", err)
	}

	oauthClient, err := auth.New(&auth.Config{
		ClientID:     cfg.DiscordClientID,
		ClientSecret: cfg.DiscordClientSecret,
		RedirectURI:  cfg.DiscordRedirectURI,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord OAuth client: %v", err)
	}

	sched, err := scheduler.New(&scheduler.Config{
		PunishmentRepo:  punishments,
		ReminderRepo:    reminders,
		GiveawayRepo:    giveaways,
		GiveawayService: giveawaySvc,
		RelayQueue:      relayQueue,
		EventBus:        eventBus,
		Clock:           systemClock,
		Interval:        cfg.SchedulerInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	server, err := api.NewServer(&api.Config{
		TicketService:     ticketSvc,
		GiveawayService:   giveawaySvc,
		SessionService:    sessionSvc,
		ModerationService: moderationSvc,
		ReminderService:   reminderSvc,
		OAuthClient:       oauthClient,
		EventBus:          eventBus,
		RelayQueue:        relayQueue,
		BotAPIKey:         cfg.BotAPIKey,
		WebURL:            cfg.WebURL,
	})
	if err != nil {
		log.Fatalf("Failed to create API server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sched.Run(ctx)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("API server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down API server: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server has been shut down")
}
