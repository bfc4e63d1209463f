package reminder

// ReminderError is a custom error type for reminder-related errors
type ReminderError string

// Error implements the error interface
func (e ReminderError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingUserID    ReminderError = "user ID is required"
	ErrMissingMessage   ReminderError = "message is required"
	ErrInvalidRemindAt  ReminderError = "remind time must be in the future"
	ErrNilConfig        ReminderError = "config cannot be nil"
	ErrNilReminderRepo  ReminderError = "reminder repository cannot be nil"
	ErrNilClock         ReminderError = "clock cannot be nil"
	ErrNilUUIDGenerator ReminderError = "UUID generator cannot be nil"
)
