package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

// SaveGalleryImage сохраняет запись о фотографии.
func (s *Storage) SaveGalleryImage(ctx context.Context, image *models.GalleryImage) error {
	const op = "storage.postgres.SaveGalleryImage"

	query := `
        INSERT INTO gallery_images(id, key, title, created_at)
        VALUES ($1, $2, $3, $4)
    `

	_, err := s.db.Exec(ctx, query,
		image.ID,
		image.Key,
		image.Title,
		image.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GalleryImageByID находит запись по ID.
func (s *Storage) GalleryImageByID(ctx context.Context, id uuid.UUID) (*models.GalleryImage, error) {
	const op = "storage.postgres.GalleryImageByID"

	query := `
        SELECT id, key, title, created_at
        FROM gallery_images
        WHERE id = $1
    `

	var image models.GalleryImage
	err := s.db.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.Key,
		&image.Title,
		&image.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &image, nil
}

// ListGalleryImages возвращает записи от новых к старым.
func (s *Storage) ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	const op = "storage.postgres.ListGalleryImages"

	query := `
        SELECT id, key, title, created_at
        FROM gallery_images
        ORDER BY created_at DESC
    `

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var images []models.GalleryImage
	for rows.Next() {
		var image models.GalleryImage
		if err := rows.Scan(
			&image.ID,
			&image.Key,
			&image.Title,
			&image.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

// DeleteGalleryImage удаляет запись.
func (s *Storage) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteGalleryImage"

	query := `
        DELETE FROM gallery_images
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
