package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aduvalf/harmonie-site/internal/models"
)

const (
	maxGuestbookNameLen    = 100
	maxGuestbookMessageLen = 2000
)

// AddGuestbookEntry принимает запись livre d'or из публичной формы.
// Запись попадает в очередь модерации; кэш страниц сбрасывается сразу,
// чтобы счётчики/списки на публичных страницах не отдавались устаревшими.
func (s *Service) AddGuestbookEntry(ctx context.Context, name, message string) (*models.GuestbookEntry, error) {
	const op = "service.guestbook.AddGuestbookEntry"

	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)

	if name == "" || message == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if len([]rune(name)) > maxGuestbookNameLen || len([]rune(message)) > maxGuestbookMessageLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	entry := &models.GuestbookEntry{
		ID:        uuid.New(),
		Name:      name,
		Message:   message,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveGuestbookEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidatePages(ctx)

	return entry, nil
}

// GuestbookEntries возвращает записи; approvedOnly — для публичной страницы.
func (s *Service) GuestbookEntries(ctx context.Context, approvedOnly bool) ([]models.GuestbookEntry, error) {
	const op = "service.guestbook.GuestbookEntries"

	entries, err := s.storage.ListGuestbookEntries(ctx, approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

// ApproveGuestbookEntry публикует запись (модерация).
func (s *Service) ApproveGuestbookEntry(ctx context.Context, id uuid.UUID) error {
	const op = "service.guestbook.ApproveGuestbookEntry"

	if err := s.storage.ApproveGuestbookEntry(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageNotFound(err))
	}

	s.invalidatePages(ctx)

	return nil
}

// DeleteGuestbookEntry удаляет запись (модерация).
func (s *Service) DeleteGuestbookEntry(ctx context.Context, id uuid.UUID) error {
	const op = "service.guestbook.DeleteGuestbookEntry"

	if err := s.storage.DeleteGuestbookEntry(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageNotFound(err))
	}

	s.invalidatePages(ctx)

	return nil
}
