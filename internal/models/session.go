package models

import (
	"time"

	"github.com/google/uuid"
)

// Session — серверная сессия, привязанная к cookie.
//
// В cookie уходит только открытый случайный идентификатор; в БД хранится
// его sha256-хэш. Сессия уничтожается явно при logout либо лениво
// отвергается по истечении срока при чтении.
type Session struct {
	// SessionHash — хэш идентификатора сессии (ключ в БД).
	SessionHash string
	// UserID — аутентифицированный пользователь.
	UserID uuid.UUID
	// Portal — портал, для которого сессия установлена; сессия musician
	// никогда не удовлетворяет admin-проверку и наоборот.
	Portal Portal
	// CreatedAt — момент создания (UTC).
	CreatedAt time.Time
	// ExpiresAt — момент истечения (UTC).
	ExpiresAt time.Time
}
