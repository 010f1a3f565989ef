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

type guestbookCreateRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type guestbookEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

func guestbookFromModel(e models.GuestbookEntry) guestbookEntryResponse {
	return guestbookEntryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Message:   e.Message,
		Approved:  e.Approved,
		CreatedAt: e.CreatedAt,
	}
}

// CreateGuestbookEntry — POST /api/guestbook (публичный).
// Запись создаётся неодобренной и ждёт модерации. Обычная HTML-форма
// получает редирект обратно на страницу, JSON-клиент — созданную запись.
func (h *Handlers) CreateGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	fromForm := isForm(r)

	var in guestbookCreateRequest
	if fromForm {
		if err := r.ParseForm(); err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		in.Name = r.PostFormValue("name")
		in.Message = r.PostFormValue("message")
	} else if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	entry, err := h.svc.AddGuestbookEntry(r.Context(), in.Name, in.Message)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if fromForm {
		http.Redirect(w, r, "/guestbook", http.StatusSeeOther)
		return
	}

	writeJSON(w, http.StatusCreated, guestbookFromModel(*entry))
}

// ListGuestbook — GET /api/admin/guestbook: все записи, включая неодобренные.
func (h *Handlers) ListGuestbook(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GuestbookEntries(r.Context(), false)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]guestbookEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, guestbookFromModel(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// ApproveGuestbookEntry — POST /api/admin/guestbook/{id}/approve.
func (h *Handlers) ApproveGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.svc.ApproveGuestbookEntry(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteGuestbookEntry — DELETE /api/admin/guestbook/{id}.
func (h *Handlers) DeleteGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.svc.DeleteGuestbookEntry(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
