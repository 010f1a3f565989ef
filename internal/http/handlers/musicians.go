package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/aduvalf/harmonie-site/internal/errors"
	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/service"
)

type musicianCreateRequest struct {
	Email string `json:"email"`
}

type musicianResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func musicianFromModel(u models.User) musicianResponse {
	return musicianResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ListMusicians — GET /api/admin/musicians.
func (h *Handlers) ListMusicians(w http.ResponseWriter, r *http.Request) {
	musicians, err := h.svc.Musicians(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]musicianResponse, 0, len(musicians))
	for _, m := range musicians {
		out = append(out, musicianFromModel(m))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateMusician — POST /api/admin/musicians.
// Даёт адресу доступ в музыкантский портал по magic-link.
func (h *Handlers) CreateMusician(w http.ResponseWriter, r *http.Request) {
	var in musicianCreateRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	user, err := h.svc.CreateMusician(r.Context(), in.Email)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, musicianFromModel(*user))
}
