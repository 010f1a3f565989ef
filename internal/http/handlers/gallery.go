package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/aduvalf/harmonie-site/internal/errors"
	"github.com/aduvalf/harmonie-site/internal/service"
)

type galleryPresignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type galleryPresignResponse struct {
	UploadURL      string            `json:"upload_url"`
	Key            string            `json:"key"`
	ExpiresSeconds int64             `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_header,omitempty"`
}

// GalleryPresign — POST /api/admin/gallery/presign.
// Выдаёт presigned PUT URL; запись в галерее появится только после confirm.
func (h *Handlers) GalleryPresign(w http.ResponseWriter, r *http.Request) {
	var in galleryPresignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	info, err := h.svc.GalleryUploadURL(r.Context(), in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, galleryPresignResponse{
		UploadURL:      info.UploadURL,
		Key:            info.Key,
		ExpiresSeconds: int64(info.Expires / time.Second),
		RequiredHeader: info.RequiredHeader,
	})
}

type galleryConfirmRequest struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type galleryImageResponse struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	Title     string    `json:"title,omitempty"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryConfirm — POST /api/admin/gallery/confirm.
// Проверяет, что объект действительно загружен, и публикует его в галерее.
func (h *Handlers) GalleryConfirm(w http.ResponseWriter, r *http.Request) {
	var in galleryConfirmRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	image, err := h.svc.ConfirmGalleryImage(r.Context(), in.Key, in.Title)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, galleryImageResponse{
		ID:        image.ID,
		Key:       image.Key,
		Title:     image.Title,
		CreatedAt: image.CreatedAt,
	})
}

// ListGallery — GET /api/admin/gallery.
func (h *Handlers) ListGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GalleryItems(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]galleryImageResponse, 0, len(items))
	for _, it := range items {
		out = append(out, galleryImageResponse{
			ID:        it.Image.ID,
			Key:       it.Image.Key,
			Title:     it.Image.Title,
			URL:       it.URL,
			CreatedAt: it.Image.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteGalleryImage — DELETE /api/admin/gallery/{id}.
func (h *Handlers) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.svc.DeleteGalleryImage(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
