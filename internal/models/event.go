package models

import (
	"time"

	"github.com/google/uuid"
)

// Event — концерт или мероприятие ассоциации.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	// TicketURL — внешняя ссылка на билетную платформу (может быть пустой).
	TicketURL string
	StartsAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
