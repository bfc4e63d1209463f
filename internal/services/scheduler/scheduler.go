package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/common/clock"
	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/relay"
	giveawayRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/giveaway"
	punishmentRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/punishment"
	reminderRepo "github.com/KirkDiggler/guildkeeper/internal/repositories/reminder"
	giveawaySvc "github.com/KirkDiggler/guildkeeper/internal/services/giveaway"
)

const defaultInterval = 30 * time.Second

// Config holds configuration for the scheduler
type Config struct {
	// Repository dependencies
	PunishmentRepo punishmentRepo.Repository
	ReminderRepo   reminderRepo.Repository
	GiveawayRepo   giveawayRepo.Repository

	// GiveawayService ends due giveaways so winner drawing and eventing
	// follow the same path as a manual end
	GiveawayService giveawaySvc.Service

	// RelayQueue receives the bot work each pass produces
	RelayQueue *relay.Queue

	// EventBus receives scheduler events for dashboard fan-out
	EventBus events.Publisher

	// Service dependencies
	Clock clock.Clock

	// Interval between ticks; defaults to 30 seconds
	Interval time.Duration
}

// Scheduler periodically sweeps the store for work whose time has come:
// punishments to lift, giveaways to end, reminders to deliver. Each pass is
// fault isolated; one failing pass never stops the others or the loop.
type Scheduler struct {
	punishmentRepo  punishmentRepo.Repository
	reminderRepo    reminderRepo.Repository
	giveawayRepo    giveawayRepo.Repository
	giveawayService giveawaySvc.Service
	relayQueue      *relay.Queue
	eventBus        events.Publisher
	clock           clock.Clock
	interval        time.Duration
}

// New creates a new scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PunishmentRepo == nil {
		return nil, ErrNilPunishmentRepo
	}

	if cfg.ReminderRepo == nil {
		return nil, ErrNilReminderRepo
	}

	if cfg.GiveawayRepo == nil {
		return nil, ErrNilGiveawayRepo
	}

	if cfg.GiveawayService == nil {
		return nil, ErrNilGiveawayService
	}

	if cfg.RelayQueue == nil {
		return nil, ErrNilRelayQueue
	}

	if cfg.EventBus == nil {
		return nil, ErrNilEventBus
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Scheduler{
		punishmentRepo:  cfg.PunishmentRepo,
		reminderRepo:    cfg.ReminderRepo,
		giveawayRepo:    cfg.GiveawayRepo,
		giveawayService: cfg.GiveawayService,
		relayQueue:      cfg.RelayQueue,
		eventBus:        cfg.EventBus,
		clock:           cfg.Clock,
		interval:        interval,
	}, nil
}

// Run ticks until the context is canceled
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("scheduler running, interval %s", s.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("scheduler stopping")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs the three passes. Pass order is fixed but their failures are
// independent.
func (s *Scheduler) tick(ctx context.Context) {
	now := s.clock.Now()

	if err := s.liftExpiredPunishments(ctx, now); err != nil {
		log.Printf("scheduler: punishment pass failed: %v", err)
	}

	if err := s.endDueGiveaways(ctx, now); err != nil {
		log.Printf("scheduler: giveaway pass failed: %v", err)
	}

	if err := s.deliverDueReminders(ctx, now); err != nil {
		log.Printf("scheduler: reminder pass failed: %v", err)
	}
}

// liftExpiredPunishments deletes expired punishments and asks the bot to
// undo them in Discord
func (s *Scheduler) liftExpiredPunishments(ctx context.Context, now time.Time) error {
	expired, err := s.punishmentRepo.DeleteExpired(ctx, &punishmentRepo.DeleteExpiredInput{
		Now: now,
	})
	if err != nil {
		return err
	}

	for _, p := range expired {
		s.relayQueue.Push(&relay.Action{
			Type:    relay.ActionPunishmentLift,
			GuildID: p.GuildID,
			Payload: map[string]any{
				"user_id": p.UserID,
				"kind":    string(p.Type),
			},
		})

		s.eventBus.Publish(events.NewDashboardLog(p.GuildID, "punishment_lift", p.UserID,
			"temp "+string(p.Type)+" expired"))
	}

	return nil
}

// endDueGiveaways ends every running giveaway whose end time has passed.
// A giveaway ended by hand between discovery and the end call is skipped.
func (s *Scheduler) endDueGiveaways(ctx context.Context, now time.Time) error {
	due, err := s.giveawayRepo.ListDue(ctx, &giveawayRepo.ListDueInput{
		Now: now,
	})
	if err != nil {
		return err
	}

	for _, giveawayID := range due {
		output, err := s.giveawayService.EndGiveaway(ctx, &giveawaySvc.EndGiveawayInput{
			GiveawayID: giveawayID,
		})
		if err != nil {
			if errors.Is(err, giveawaySvc.ErrGiveawayEnded) || errors.Is(err, giveawaySvc.ErrGiveawayNotFound) {
				continue
			}
			log.Printf("scheduler: failed to end giveaway %s: %v", giveawayID, err)
			continue
		}

		g := output.Giveaway
		s.relayQueue.Push(&relay.Action{
			Type:    relay.ActionMessageSend,
			GuildID: g.GuildID,
			Payload: map[string]any{
				"channel_id":  g.ChannelID,
				"giveaway_id": g.ID,
				"prize":       g.Prize,
				"winner_ids":  g.WinnerIDs,
			},
		})
	}

	return nil
}

// deliverDueReminders claims due reminders and hands them to the bot relay
func (s *Scheduler) deliverDueReminders(ctx context.Context, now time.Time) error {
	due, err := s.reminderRepo.ClaimDue(ctx, &reminderRepo.ClaimDueInput{
		Now: now,
	})
	if err != nil {
		return err
	}

	for _, r := range due {
		s.relayQueue.Push(&relay.Action{
			Type:    relay.ActionReminderDeliver,
			GuildID: r.GuildID,
			Payload: map[string]any{
				"user_id":    r.UserID,
				"channel_id": r.ChannelID,
				"message":    r.Message,
			},
		})
	}

	return nil
}
