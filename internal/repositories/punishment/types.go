package punishment

import (
	"time"

	"github.com/KirkDiggler/guildkeeper/internal/models"
)

// CreatePunishmentInput contains parameters for persisting a punishment
type CreatePunishmentInput struct {
	Punishment *models.TempPunishment
}

// ListPunishmentsInput contains parameters for listing a guild's punishments
type ListPunishmentsInput struct {
	GuildID string
}

// DeleteExpiredInput contains parameters for expiring punishments
type DeleteExpiredInput struct {
	Now time.Time
}
