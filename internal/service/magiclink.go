package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/pkg/log"
	"github.com/aduvalf/harmonie-site/internal/pkg/redact"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

// IssueMagicLink выпускает одноразовый токен входа и отправляет письмо
// со ссылкой верификации.
//
// Политика для неизвестного/неактивного адреса едина для обоих порталов:
// ответ внешне неотличим от успешного (без создания токена и письма),
// чтобы не допустить перебор зарегистрированных адресов. Возвращаемая
// debug-ссылка непуста только вне prod-окружения.
func (s *Service) IssueMagicLink(ctx context.Context, email string, portal models.Portal) (string, error) {
	const op = "service.magiclink.IssueMagicLink"

	lg := log.From(ctx)

	normEmail, err := validateEmail(email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("magic_link_unknown_email",
				slog.String("op", op),
				slog.String("email", redact.Email(normEmail)),
				slog.String("portal", string(portal)),
			)
			return "", nil
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !user.IsActive || !portal.Satisfies(user.Role) {
		lg.Warn("magic_link_ineligible_user",
			slog.String("op", op),
			slog.String("email", redact.Email(normEmail)),
			slog.String("portal", string(portal)),
		)
		return "", nil
	}

	plain, err := s.generateAuthToken(ctx, normEmail, portal)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	link := strings.TrimRight(s.cfg.Site.BaseURL, "/") +
		portal.Info().VerifyPath + "?token=" + url.QueryEscape(plain)

	if s.mailer != nil {
		mailCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Mail)
		defer cancel()

		if err := s.mailer.SendMagicLink(mailCtx, normEmail, portal, link); err != nil {
			lg.Error("magic_link_send_failed",
				slog.String("op", op),
				slog.String("email", redact.Email(normEmail)),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}
	} else {
		lg.Info("magic_link_mailer_disabled",
			slog.String("op", op),
			slog.String("email", redact.Email(normEmail)),
		)
	}

	lg.Info("magic_link_issued",
		slog.String("op", op),
		slog.String("email", redact.Email(normEmail)),
		slog.String("portal", string(portal)),
	)

	if s.cfg.Env != "prod" {
		return link, nil
	}

	return "", nil
}

// VerifyMagicLink потребляет токен ровно один раз и создаёт сессию.
// Возвращает открытый идентификатор сессии для установки в cookie.
//
// Порядок проверок фиксирован: отсутствие/чужой портал/повторное
// использование -> ErrInvalidToken; истечение -> ErrTokenExpired; затем
// условное потребление (ровно один успех на токен при конкурентных
// попытках); затем перепроверка владельца по таблице users.
func (s *Service) VerifyMagicLink(ctx context.Context, plain string, portal models.Portal) (string, error) {
	const op = "service.magiclink.VerifyMagicLink"

	lg := log.From(ctx)

	if plain == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	hash := hashSecret(plain)

	token, err := s.storage.AuthTokenByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("verify_token_not_found",
				slog.String("op", op),
				slog.String("portal", string(portal)),
			)
			return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if token.Portal != portal {
		lg.Warn("verify_token_portal_mismatch",
			slog.String("op", op),
			slog.String("portal", string(portal)),
		)
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if token.Used {
		lg.Warn("verify_token_already_used",
			slog.String("op", op),
			slog.String("email", redact.Email(token.Email)),
		)
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if !time.Now().UTC().Before(token.ExpiresAt) {
		lg.Warn("verify_token_expired",
			slog.String("op", op),
			slog.String("email", redact.Email(token.Email)),
		)
		return "", fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	// Условное потребление: при конкурентной двойной отправке одной и той
	// же ссылки успешным окажется ровно один вызов.
	consumed, err := s.storage.ConsumeAuthToken(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !consumed {
		lg.Warn("verify_token_lost_race",
			slog.String("op", op),
			slog.String("email", redact.Email(token.Email)),
		)
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	// Роль перепроверяется по users на момент верификации,
	// а не берётся на веру из токена.
	user, err := s.storage.UserByEmail(ctx, token.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !user.IsActive || !portal.Satisfies(user.Role) {
		lg.Warn("verify_user_ineligible",
			slog.String("op", op),
			slog.String("email", redact.Email(token.Email)),
			slog.String("portal", string(portal)),
		)
		return "", fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	sessionID, err := s.createSession(ctx, user, portal)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("magic_link_verified",
		slog.String("op", op),
		slog.String("email", redact.Email(token.Email)),
		slog.String("portal", string(portal)),
	)

	return sessionID, nil
}

// generateAuthToken создает новый magic-link токен (32 байта энтропии).
func (s *Service) generateAuthToken(ctx context.Context, email string, portal models.Portal) (string, error) {
	const (
		op          = "service.magiclink.generateAuthToken"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			lg.Error("token_rand_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}
		plain := base64.RawURLEncoding.EncodeToString(b)

		now := time.Now().UTC()
		token := &models.AuthToken{
			TokenHash: hashSecret(plain),
			Email:     email,
			Portal:    portal,
			CreatedAt: now,
			ExpiresAt: now.Add(s.cfg.Auth.MagicLinkTTL),
			Used:      false,
		}

		if err := s.storage.SaveAuthToken(ctx, token); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия — пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_auth_token_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		return plain, nil
	}

	lg.Error("auth_token_collision_exceeded",
		slog.String("op", op),
	)

	return "", fmt.Errorf("%s: %w", op, ErrTokenCollision)
}

// hashSecret хэширует открытое значение токена/сессии (sha256 → base64url).
func hashSecret(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	const op = "service.magiclink.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}
