package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

// SaveEvent сохраняет новое мероприятие.
func (s *Storage) SaveEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.postgres.SaveEvent"

	query := `
        INSERT INTO events(id, title, description, location, ticket_url, starts_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

	_, err := s.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.TicketURL,
		event.StartsAt,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateEvent обновляет мероприятие целиком.
func (s *Storage) UpdateEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.postgres.UpdateEvent"

	query := `
        UPDATE events
        SET title = $2, description = $3, location = $4, ticket_url = $5, starts_at = $6, updated_at = $7
        WHERE id = $1
    `

	cmdTag, err := s.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.TicketURL,
		event.StartsAt,
		event.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteEvent удаляет мероприятие.
func (s *Storage) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteEvent"

	query := `
        DELETE FROM events
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

// ListEvents возвращает мероприятия, начинающиеся не раньше from.
func (s *Storage) ListEvents(ctx context.Context, from time.Time) ([]models.Event, error) {
	const op = "storage.postgres.ListEvents"

	query := `
        SELECT id, title, description, location, ticket_url, starts_at, created_at, updated_at
        FROM events
        WHERE starts_at >= $1
        ORDER BY starts_at
    `

	rows, err := s.db.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.TicketURL,
			&event.StartsAt,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}
