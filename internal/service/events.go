package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aduvalf/harmonie-site/internal/models"
)

// EventParams — входные данные создания/обновления мероприятия.
type EventParams struct {
	Title       string
	Description string
	Location    string
	TicketURL   string
	StartsAt    time.Time
}

func (p *EventParams) validate() error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" || p.StartsAt.IsZero() {
		return ErrInvalidArgument
	}

	return nil
}

// CreateEvent создаёт мероприятие.
func (s *Service) CreateEvent(ctx context.Context, params EventParams) (*models.Event, error) {
	const op = "service.events.CreateEvent"

	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	event := &models.Event{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Location:    params.Location,
		TicketURL:   params.TicketURL,
		StartsAt:    params.StartsAt.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidatePages(ctx)

	return event, nil
}

// UpdateEvent обновляет мероприятие целиком.
func (s *Service) UpdateEvent(ctx context.Context, id uuid.UUID, params EventParams) (*models.Event, error) {
	const op = "service.events.UpdateEvent"

	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event := &models.Event{
		ID:          id,
		Title:       params.Title,
		Description: params.Description,
		Location:    params.Location,
		TicketURL:   params.TicketURL,
		StartsAt:    params.StartsAt.UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.storage.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageNotFound(err))
	}

	s.invalidatePages(ctx)

	return event, nil
}

// DeleteEvent удаляет мероприятие.
func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	const op = "service.events.DeleteEvent"

	if err := s.storage.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageNotFound(err))
	}

	s.invalidatePages(ctx)

	return nil
}

// UpcomingEvents возвращает будущие мероприятия для публичных страниц.
func (s *Service) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	const op = "service.events.UpcomingEvents"

	events, err := s.storage.ListEvents(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}
