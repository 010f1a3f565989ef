package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/pkg/log"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

// VerifySession разрешает сессию в пользователя для данного портала.
// Чистое чтение без мутаций — безопасно вызывать в middleware на каждом
// запросе. Просроченная сессия отвергается лениво, без удаления записи.
func (s *Service) VerifySession(ctx context.Context, plain string, portal models.Portal) (*models.User, error) {
	const op = "service.session.VerifySession"

	if plain == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}

	session, err := s.storage.SessionByHash(ctx, hashSecret(plain))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Сессия musician не удовлетворяет admin-проверку и наоборот,
	// даже если сама по себе действительна.
	if session.Portal != portal {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}

	if !time.Now().UTC().Before(session.ExpiresAt) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}

	user, err := s.storage.UserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Деактивация или смена роли действует немедленно, а не по истечении
	// сессии.
	if !user.IsActive || !portal.Satisfies(user.Role) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}

	return user, nil
}

// Logout уничтожает сессию. Идемпотентен: отсутствие сессии — не ошибка.
func (s *Service) Logout(ctx context.Context, plain string) error {
	const op = "service.session.Logout"

	if plain == "" {
		return nil
	}

	if err := s.storage.DeleteSession(ctx, hashSecret(plain)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// createSession создаёт новую сессию и возвращает её открытый идентификатор.
func (s *Service) createSession(ctx context.Context, user *models.User, portal models.Portal) (string, error) {
	const (
		op          = "service.session.createSession"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			lg.Error("session_rand_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}
		plain := base64.RawURLEncoding.EncodeToString(b)

		now := time.Now().UTC()
		session := &models.Session{
			SessionHash: hashSecret(plain),
			UserID:      user.ID,
			Portal:      portal,
			CreatedAt:   now,
			ExpiresAt:   now.Add(s.cfg.Auth.SessionTTL),
		}

		if err := s.storage.SaveSession(ctx, session); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия — пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_session_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		return plain, nil
	}

	lg.Error("session_collision_exceeded",
		slog.String("op", op),
	)

	return "", fmt.Errorf("%s: %w", op, ErrTokenCollision)
}
