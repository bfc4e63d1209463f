package events

// Event type discriminators carried in the serialized "type" field
const (
	TypeStats        = "stats"
	TypeTicketUpdate = "ticket_update"
	TypeDashboardLog = "dashboard_log"
)

// Event is a guild-scoped workflow event. Events are transient: they exist
// only in memory between a state-machine mutation and the dashboard
// connections subscribed to the guild.
type Event interface {
	// EventGuildID returns the guild the event is scoped to
	EventGuildID() string
}

// Stats carries a refreshed guild stats payload
type Stats struct {
	Type    string         `json:"type"`
	GuildID string         `json:"guild_id"`
	Data    map[string]any `json:"data"`
}

// EventGuildID returns the guild the event is scoped to
func (e *Stats) EventGuildID() string { return e.GuildID }

// NewStats creates a stats event for a guild
func NewStats(guildID string, data map[string]any) *Stats {
	return &Stats{
		Type:    TypeStats,
		GuildID: guildID,
		Data:    data,
	}
}

// TicketUpdate announces a ticket state change
type TicketUpdate struct {
	Type     string `json:"type"`
	GuildID  string `json:"guild_id"`
	TicketID string `json:"ticket_id"`
	Status   string `json:"status"`
}

// EventGuildID returns the guild the event is scoped to
func (e *TicketUpdate) EventGuildID() string { return e.GuildID }

// NewTicketUpdate creates a ticket update event
func NewTicketUpdate(guildID, ticketID, status string) *TicketUpdate {
	return &TicketUpdate{
		Type:     TypeTicketUpdate,
		GuildID:  guildID,
		TicketID: ticketID,
		Status:   status,
	}
}

// DashboardLog announces a dashboard-visible action for a guild's audit feed
type DashboardLog struct {
	Type    string `json:"type"`
	GuildID string `json:"guild_id"`
	Action  string `json:"action"`
	UserID  string `json:"user_id"`
	Details string `json:"details"`
}

// EventGuildID returns the guild the event is scoped to
func (e *DashboardLog) EventGuildID() string { return e.GuildID }

// NewDashboardLog creates a dashboard log event
func NewDashboardLog(guildID, action, userID, details string) *DashboardLog {
	return &DashboardLog{
		Type:    TypeDashboardLog,
		GuildID: guildID,
		Action:  action,
		UserID:  userID,
		Details: details,
	}
}
