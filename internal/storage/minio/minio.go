// minio предоставляет реализацию storage.ImageStorage на базе MinIO/S3
// (совместимо с R2). minio.go — конструктор клиента: нормализует endpoint,
// настраивает Secure/creds и проверяет наличие целевого бакета.
// gallery.go — операции с фотографиями галереи поверх клиента:
//   - генерация presigned PUT URL для загрузки;
//   - подтверждение загрузки (валидация факта, размера и типа);
//   - публичный URL и удаление объекта.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aduvalf/harmonie-site/internal/config"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

// ImageStorage — адаптер MinIO для операций с фотографиями галереи.
type ImageStorage struct {
	s3     config.S3Config
	upload config.UploadConfig
	client *mclient.Client
}

// New создает и инициализирует клиент MinIO.
// Делает endpoint-перенастройку (убирает схему), подбирает Secure по схеме
// и выполняет fail-fast-проверку доступности бакета.
func New(ctx context.Context, s3 config.S3Config, upload config.UploadConfig) (*ImageStorage, error) {
	const op = "storage/minio/New"

	endpoint := s3.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(s3.RootUser, s3.RootPassword, ""),
		Secure: secure,
	})

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, s3.Bucket)
	}

	return &ImageStorage{s3: s3, upload: upload, client: client}, nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.ImageStorage = (*ImageStorage)(nil)
