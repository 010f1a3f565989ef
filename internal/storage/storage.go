package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aduvalf/harmonie-site/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/токен/сессия/контент).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/хэш токена).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — некорректные параметры операции (размер/тип файла).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// ListUsersByRole возвращает пользователей с данной ролью.
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

// AuthTokenStorage выполняет операции над magic-link токенами.
type AuthTokenStorage interface {
	// SaveAuthToken сохраняет новый токен (по хэшу).
	SaveAuthToken(ctx context.Context, token *models.AuthToken) error
	// AuthTokenByHash находит токен по его хэшу.
	AuthTokenByHash(ctx context.Context, hash string) (*models.AuthToken, error)
	// ConsumeAuthToken пытается пометить токен использованным.
	// Возвращает:
	//   (true, nil)  — токен был активен и потреблён сейчас;
	//   (false, nil) — токен существует, но уже был использован;
	//   (false, ErrNotFound) — токен не найден.
	ConsumeAuthToken(ctx context.Context, hash string) (bool, error)
	// DeleteExpiredAuthTokens удаляет все просроченные токены.
	DeleteExpiredAuthTokens(ctx context.Context, now time.Time) error
}

// SessionStorage выполняет операции над сессиями.
type SessionStorage interface {
	// SaveSession сохраняет новую сессию (по хэшу идентификатора).
	SaveSession(ctx context.Context, session *models.Session) error
	// SessionByHash находит сессию по хэшу идентификатора.
	SessionByHash(ctx context.Context, hash string) (*models.Session, error)
	// DeleteSession удаляет сессию; отсутствие записи — не ошибка
	// (logout идемпотентен).
	DeleteSession(ctx context.Context, hash string) error
	// DeleteExpiredSessions удаляет все просроченные сессии.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

// GuestbookStorage выполняет операции над livre d'or.
type GuestbookStorage interface {
	// SaveGuestbookEntry сохраняет новую запись.
	SaveGuestbookEntry(ctx context.Context, entry *models.GuestbookEntry) error
	// ListGuestbookEntries возвращает записи от новых к старым;
	// approvedOnly ограничивает выдачу опубликованными.
	ListGuestbookEntries(ctx context.Context, approvedOnly bool) ([]models.GuestbookEntry, error)
	// ApproveGuestbookEntry публикует запись.
	ApproveGuestbookEntry(ctx context.Context, id uuid.UUID) error
	// DeleteGuestbookEntry удаляет запись.
	DeleteGuestbookEntry(ctx context.Context, id uuid.UUID) error
}

// EventStorage выполняет операции над мероприятиями.
type EventStorage interface {
	// SaveEvent сохраняет новое мероприятие.
	SaveEvent(ctx context.Context, event *models.Event) error
	// UpdateEvent обновляет мероприятие целиком.
	UpdateEvent(ctx context.Context, event *models.Event) error
	// DeleteEvent удаляет мероприятие.
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	// ListEvents возвращает мероприятия, начинающиеся не раньше from,
	// от ближайших к дальним.
	ListEvents(ctx context.Context, from time.Time) ([]models.Event, error)
}

// GalleryStorage выполняет операции над метаданными галереи.
type GalleryStorage interface {
	// SaveGalleryImage сохраняет запись о фотографии.
	SaveGalleryImage(ctx context.Context, image *models.GalleryImage) error
	// GalleryImageByID находит запись по ID.
	GalleryImageByID(ctx context.Context, id uuid.UUID) (*models.GalleryImage, error)
	// ListGalleryImages возвращает записи от новых к старым.
	ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error)
	// DeleteGalleryImage удаляет запись.
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	AuthTokenStorage
	SessionStorage
	GuestbookStorage
	EventStorage
	GalleryStorage
	Close()
}

// UploadInfo — данные presigned-загрузки фотографии.
type UploadInfo struct {
	UploadURL string
	Key       string
	Expires   time.Duration
	// RequiredHeader — заголовки, которые клиент обязан передать при PUT.
	RequiredHeader map[string]string
}

// ImageStorage — контракт объектного хранилища фотографий галереи.
type ImageStorage interface {
	// ImageUploadURL генерирует presigned PUT URL для загрузки.
	ImageUploadURL(ctx context.Context, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckImageUpload подтверждает факт загрузки по ключу и возвращает
	// публичный URL объекта.
	CheckImageUpload(ctx context.Context, key string) (string, error)
	// ImageURL возвращает публичный URL существующего объекта.
	ImageURL(key string) string
	// RemoveImage удаляет объект.
	RemoveImage(ctx context.Context, key string) error
}
