package models

import (
	"time"

	"github.com/google/uuid"
)

// GuestbookEntry — запись в livre d'or. Новые записи попадают в очередь
// модерации (Approved=false) и публикуются администратором.
type GuestbookEntry struct {
	ID        uuid.UUID
	Name      string
	Message   string
	Approved  bool
	CreatedAt time.Time
}
