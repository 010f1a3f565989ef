package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

// SaveGuestbookEntry сохраняет новую запись livre d'or.
func (s *Storage) SaveGuestbookEntry(ctx context.Context, entry *models.GuestbookEntry) error {
	const op = "storage.postgres.SaveGuestbookEntry"

	query := `
        INSERT INTO guestbook_entries(id, name, message, approved, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := s.db.Exec(ctx, query,
		entry.ID,
		entry.Name,
		entry.Message,
		entry.Approved,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListGuestbookEntries возвращает записи от новых к старым.
func (s *Storage) ListGuestbookEntries(ctx context.Context, approvedOnly bool) ([]models.GuestbookEntry, error) {
	const op = "storage.postgres.ListGuestbookEntries"

	query := `
        SELECT id, name, message, approved, created_at
        FROM guestbook_entries
        WHERE (NOT $1) OR approved
        ORDER BY created_at DESC
    `

	rows, err := s.db.Query(ctx, query, approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []models.GuestbookEntry
	for rows.Next() {
		var entry models.GuestbookEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Message,
			&entry.Approved,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

// ApproveGuestbookEntry публикует запись.
func (s *Storage) ApproveGuestbookEntry(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.ApproveGuestbookEntry"

	query := `
        UPDATE guestbook_entries
        SET approved = TRUE
        WHERE id = $1
    `

	cmdTag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteGuestbookEntry удаляет запись.
func (s *Storage) DeleteGuestbookEntry(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteGuestbookEntry"

	query := `
        DELETE FROM guestbook_entries
        WHERE id = $1
    `

	cmdTag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
