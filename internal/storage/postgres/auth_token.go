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

// SaveAuthToken сохраняет новый magic-link токен в БД.
func (s *Storage) SaveAuthToken(ctx context.Context, token *models.AuthToken) error {
	const op = "storage.postgres.SaveAuthToken"

	query := `
        INSERT INTO auth_tokens(token_hash, email, portal, created_at, expires_at, used)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err := s.db.Exec(ctx, query,
		token.TokenHash,
		token.Email,
		string(token.Portal),
		token.CreatedAt,
		token.ExpiresAt,
		token.Used,
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

// AuthTokenByHash находит токен по его хэшу.
func (s *Storage) AuthTokenByHash(ctx context.Context, hash string) (*models.AuthToken, error) {
	const op = "storage.postgres.AuthTokenByHash"

	query := `
        SELECT token_hash, email, portal, created_at, expires_at, used
        FROM auth_tokens
        WHERE token_hash = $1
    `

	var token models.AuthToken
	err := s.db.QueryRow(ctx, query, hash).Scan(
		&token.TokenHash,
		&token.Email,
		&token.Portal,
		&token.CreatedAt,
		&token.ExpiresAt,
		&token.Used,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &token, nil
}

// ConsumeAuthToken пытается пометить токен использованным, если он ещё
// не был использован. Условный UPDATE гарантирует ровно одно успешное
// потребление на токен при любом числе конкурентных верификаций.
// Возвращает:
//
//	(true, nil)  — токен был активен и потреблён сейчас;
//	(false, nil) — токен существует, но уже был использован;
//	(false, ErrNotFound) — токен не найден.
func (s *Storage) ConsumeAuthToken(ctx context.Context, hash string) (bool, error) {
	const op = "storage.postgres.ConsumeAuthToken"

	const upd = `
		UPDATE auth_tokens
		SET used = TRUE
		WHERE token_hash = $1 AND used = FALSE
		RETURNING email
	`

	var email string
	err := s.db.QueryRow(ctx, upd, hash).Scan(&email)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	const sel = `
		SELECT used
		FROM auth_tokens
		WHERE token_hash = $1
	`

	var used bool
	err = s.db.QueryRow(ctx, sel, hash).Scan(&used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return false, nil
}

// DeleteExpiredAuthTokens удаляет все просроченные токены.
func (s *Storage) DeleteExpiredAuthTokens(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredAuthTokens"

	query := `
        DELETE FROM auth_tokens
        WHERE expires_at <= $1
    `

	_, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
