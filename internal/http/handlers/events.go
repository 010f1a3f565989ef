package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/aduvalf/harmonie-site/internal/errors"
	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/service"
)

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	TicketURL   string    `json:"ticket_url"`
	StartsAt    time.Time `json:"starts_at"`
}

func (in eventRequest) toParams() service.EventParams {
	return service.EventParams{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		TicketURL:   in.TicketURL,
		StartsAt:    in.StartsAt,
	}
}

type eventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	TicketURL   string    `json:"ticket_url,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func eventFromModel(e models.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		TicketURL:   e.TicketURL,
		StartsAt:    e.StartsAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ListEvents — GET /api/admin/events: ближайшие события.
func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.UpcomingEvents(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventFromModel(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateEvent — POST /api/admin/events.
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in eventRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), in.toParams())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, eventFromModel(*event))
}

// UpdateEvent — PUT /api/admin/events/{id}.
func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	var in eventRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	event, err := h.svc.UpdateEvent(r.Context(), id, in.toParams())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventFromModel(*event))
}

// DeleteEvent — DELETE /api/admin/events/{id}.
func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
