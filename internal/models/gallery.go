package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage — запись о фотографии галереи. Сам файл лежит в
// объектном хранилище по ключу Key; здесь — метаданные для выдачи.
type GalleryImage struct {
	ID        uuid.UUID
	Key       string
	Title     string
	CreatedAt time.Time
}
