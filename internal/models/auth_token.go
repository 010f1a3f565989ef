package models

import "time"

// AuthToken — одноразовый токен magic-link.
//
// Описание:
//   - TokenHash — sha256-хэш токена в base64url; открытое значение
//     уходит только в письмо и нигде не сохраняется;
//   - Email — адрес, который токен аутентифицирует;
//   - Portal — портал (admin/musician), для которого токен выпущен;
//   - Used — после успешной верификации токен навсегда недействителен;
//     записи не удаляются (аудит), а считаются мёртвыми.
type AuthToken struct {
	// TokenHash — хэш токена; в БД хранится только он.
	TokenHash string
	// Email — владелец токена.
	Email string
	// Portal — портал, к которому токен даёт доступ.
	Portal Portal
	// CreatedAt — момент выпуска (UTC).
	CreatedAt time.Time
	// ExpiresAt — момент истечения (UTC); токен недействителен начиная с него.
	ExpiresAt time.Time
	// Used — признак потреблённости; выставляется ровно один раз.
	Used bool
}
