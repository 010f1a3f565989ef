package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/aduvalf/harmonie-site/internal/storage"
)

// ImageUploadURL генерирует presigned PUT URL для загрузки фотографии.
// Валидирует contentType и contentLength согласно конфигу, формирует ключ
// вида "gallery/<uuid>.<ext>" и возвращает набор заголовков, которые
// клиент должен передать при PUT (будут проверены при подтверждении).
func (s *ImageStorage) ImageUploadURL(ctx context.Context, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	op := "storage/minio/gallery/ImageUploadURL"

	if contentLength <= 0 || contentLength > s.upload.MaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.upload.AllowedContentTypes, contentType) {
		return nil, storage.ErrInvalidArgument
	}

	var ext string
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	default:
		ext = ""
	}

	key := path.Join("gallery", uuid.NewString()+ext)

	url, err := s.client.PresignedPutObject(ctx, s.s3.Bucket, key, s.s3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info := &storage.UploadInfo{
		UploadURL: url.String(),
		Key:       key,
		Expires:   s.s3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}

	return info, nil
}

// CheckImageUpload подтверждает факт загрузки по key:
// проверяет, что объект существует и удовлетворяет ограничениям
// размера/типа. Возвращает публичный URL объекта.
func (s *ImageStorage) CheckImageUpload(ctx context.Context, key string) (string, error) {
	op := "storage/minio/gallery/CheckImageUpload"

	if !strings.HasPrefix(key, "gallery/") {
		return "", storage.ErrInvalidArgument
	}

	objInfo, err := s.client.StatObject(ctx, s.s3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return "", storage.ErrNotFound
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if objInfo.Size <= 0 || objInfo.Size > s.upload.MaxSizeBytes {
		return "", storage.ErrInvalidArgument
	}

	if ct := objInfo.ContentType; ct != "" && !isAllowedContentType(s.upload.AllowedContentTypes, ct) {
		return "", storage.ErrInvalidArgument
	}

	return s.ImageURL(key), nil
}

// ImageURL возвращает публичный URL объекта (если PublicBaseURL задан),
// иначе — пустую строку.
func (s *ImageStorage) ImageURL(key string) string {
	if s.s3.PublicBaseURL == "" {
		return ""
	}

	base := strings.TrimRight(s.s3.PublicBaseURL, "/")

	return base + "/" + key
}

// RemoveImage удаляет объект.
func (s *ImageStorage) RemoveImage(ctx context.Context, key string) error {
	op := "storage/minio/gallery/RemoveImage"

	if err := s.client.RemoveObject(ctx, s.s3.Bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
