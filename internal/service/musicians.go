package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

// CreateMusician заводит учётную запись музыканта. Пароля нет:
// вход выполняется только по magic-link на этот адрес.
func (s *Service) CreateMusician(ctx context.Context, email string) (*models.User, error) {
	const op = "service.musicians.CreateMusician"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.New(),
		Email:     normEmail,
		Role:      models.RoleMusician,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// Musicians возвращает все учётные записи музыкантов.
func (s *Service) Musicians(ctx context.Context) ([]models.User, error) {
	const op = "service.musicians.Musicians"

	users, err := s.storage.ListUsersByRole(ctx, models.RoleMusician)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}
