package scheduler

// SchedulerError is a custom error type for scheduler-related errors
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          SchedulerError = "config cannot be nil"
	ErrNilPunishmentRepo  SchedulerError = "punishment repository cannot be nil"
	ErrNilReminderRepo    SchedulerError = "reminder repository cannot be nil"
	ErrNilGiveawayRepo    SchedulerError = "giveaway repository cannot be nil"
	ErrNilGiveawayService SchedulerError = "giveaway service cannot be nil"
	ErrNilRelayQueue      SchedulerError = "relay queue cannot be nil"
	ErrNilEventBus        SchedulerError = "event bus cannot be nil"
	ErrNilClock           SchedulerError = "clock cannot be nil"
)
