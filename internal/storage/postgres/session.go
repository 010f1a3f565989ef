package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

// SaveSession сохраняет новую сессию в БД.
func (s *Storage) SaveSession(ctx context.Context, session *models.Session) error {
	const op = "storage.postgres.SaveSession"

	query := `
        INSERT INTO sessions(session_hash, user_id, portal, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := s.db.Exec(ctx, query,
		session.SessionHash,
		session.UserID,
		string(session.Portal),
		session.CreatedAt,
		session.ExpiresAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SessionByHash находит сессию по хэшу идентификатора.
func (s *Storage) SessionByHash(ctx context.Context, hash string) (*models.Session, error) {
	const op = "storage.postgres.SessionByHash"

	query := `
        SELECT session_hash, user_id, portal, created_at, expires_at
        FROM sessions
        WHERE session_hash = $1
    `

	var session models.Session
	err := s.db.QueryRow(ctx, query, hash).Scan(
		&session.SessionHash,
		&session.UserID,
		&session.Portal,
		&session.CreatedAt,
		&session.ExpiresAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &session, nil
}

// DeleteSession удаляет сессию. Отсутствие записи — не ошибка:
// logout обязан быть идемпотентным.
func (s *Storage) DeleteSession(ctx context.Context, hash string) error {
	const op = "storage.postgres.DeleteSession"

	query := `
        DELETE FROM sessions
        WHERE session_hash = $1
    `

	_, err := s.db.Exec(ctx, query, hash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteExpiredSessions удаляет все просроченные сессии.
func (s *Storage) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredSessions"

	query := `
        DELETE FROM sessions
        WHERE expires_at <= $1
    `

	_, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
