package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

// GalleryItem — фотография галереи вместе с публичным URL.
type GalleryItem struct {
	Image models.GalleryImage
	URL   string
}

// GalleryUploadURL выдаёт presigned PUT URL для загрузки фотографии.
func (s *Service) GalleryUploadURL(ctx context.Context, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.gallery.GalleryUploadURL"

	if s.images == nil {
		return nil, fmt.Errorf("%s: image storage is not configured", op)
	}

	info, err := s.images.ImageUploadURL(ctx, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmGalleryImage подтверждает загрузку по ключу и публикует запись.
func (s *Service) ConfirmGalleryImage(ctx context.Context, key, title string) (*models.GalleryImage, error) {
	const op = "service.gallery.ConfirmGalleryImage"

	if s.images == nil {
		return nil, fmt.Errorf("%s: image storage is not configured", op)
	}

	if _, err := s.images.CheckImageUpload(ctx, key); err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	image := &models.GalleryImage{
		ID:        uuid.New(),
		Key:       key,
		Title:     strings.TrimSpace(title),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveGalleryImage(ctx, image); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidatePages(ctx)

	return image, nil
}

// GalleryItems возвращает фотографии с публичными URL для страницы галереи.
func (s *Service) GalleryItems(ctx context.Context) ([]GalleryItem, error) {
	const op = "service.gallery.GalleryItems"

	images, err := s.storage.ListGalleryImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]GalleryItem, 0, len(images))
	for _, img := range images {
		var url string
		if s.images != nil {
			url = s.images.ImageURL(img.Key)
		}

		items = append(items, GalleryItem{Image: img, URL: url})
	}

	return items, nil
}

// DeleteGalleryImage удаляет запись и сам объект.
func (s *Service) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	const op = "service.gallery.DeleteGalleryImage"

	image, err := s.storage.GalleryImageByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageNotFound(err))
	}

	// Сначала запись, затем blob: осиротевший объект в бакете безвреден,
	// запись без объекта — битая ссылка на странице.
	if err := s.storage.DeleteGalleryImage(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageNotFound(err))
	}

	if s.images != nil {
		if err := s.images.RemoveImage(ctx, image.Key); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	s.invalidatePages(ctx)

	return nil
}
