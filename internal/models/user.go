package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль пользователя в системе. Источник истины — таблица users;
// роль в токене/сессии всегда перепроверяется по этой записи.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleMusician   Role = "MUSICIAN"
)

// User — модель пользователя (администратор или музыкант).
type User struct {
	ID        uuid.UUID
	Email     string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
