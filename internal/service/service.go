// service содержит бизнес-логику сайта ассоциации:
// выпуск/потребление magic-link токенов, сессии порталов,
// livre d'or, мероприятия и галерею — через интерфейсы пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданные хранилища потокобезопасны. Вся правда о токенах и
//     сессиях живёт в БД — в процессе нет разделяемого мутабельного состояния.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-статусы
//     либо код ошибки в query-параметре редиректа (см. internal/errors).
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aduvalf/harmonie-site/internal/cache"
	"github.com/aduvalf/harmonie-site/internal/config"
	"github.com/aduvalf/harmonie-site/internal/mail"
	"github.com/aduvalf/harmonie-site/internal/pkg/log"
	"github.com/aduvalf/harmonie-site/internal/storage"
)

var (
	// ErrInvalidEmail — e-mail имеет некорректный формат.
	// Транспорт: HTTP 400 до любого обращения к хранилищу.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidToken — токен не найден, уже использован или предъявлен
	// не тому порталу. Транспорт: redirect ?error=invalid_token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк.
	// Транспорт: redirect ?error=expired_token.
	ErrTokenExpired = errors.New("token expired")

	// ErrUnauthorized — владелец токена более не существует, деактивирован
	// или его роль не соответствует порталу. Транспорт: ?error=unauthorized.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidSession — сессия отсутствует, просрочена или не
	// удовлетворяет требуемому порталу. Транспорт: редирект на страницу
	// входа (страницы) либо HTTP 401 (API).
	ErrInvalidSession = errors.New("invalid session")

	// ErrTokenCollision — исчерпаны попытки сгенерировать уникальный
	// токен/идентификатор сессии (редчайшие коллизии хэша в БД).
	// Транспорт: HTTP 500.
	ErrTokenCollision = errors.New("token collision")

	// ErrInvalidArgument — контент не проходит валидацию
	// (пустое/слишком длинное поле, неподдерживаемый тип файла).
	// Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmailTaken — e-mail уже занят другим пользователем.
	// Транспорт: HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrNotFound — запрошенная запись контента не найдена.
	// Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")
)

// Service описывает бизнес-логику сайта.
type Service struct {
	storage storage.Storage
	cfg     *config.Config
	mailer  mail.Mailer          // может быть nil: письма не отправляются (локальная разработка)
	images  storage.ImageStorage // может быть nil, если галерея не сконфигурирована
	pcache  cache.PageCache      // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg *config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// SetMailer устанавливает доставку писем (опционально).
func (s *Service) SetMailer(m mail.Mailer) {
	s.mailer = m
}

// SetImageStorage устанавливает объектное хранилище галереи (опционально).
func (s *Service) SetImageStorage(im storage.ImageStorage) {
	s.images = im
}

// SetPageCache устанавливает кэш страниц (опционально).
func (s *Service) SetPageCache(c cache.PageCache) {
	s.pcache = c
}

// mapStorageNotFound переводит storage.ErrNotFound в доменный ErrNotFound,
// остальные ошибки возвращает как есть.
func mapStorageNotFound(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}

	return err
}

// invalidatePages сбрасывает кэш страниц после успешной мутации контента.
// Ошибка Redis не валит мутацию: при недоступном кэше чтения тоже
// деградируют в промахи, так что устаревший ответ отдан не будет.
// Остаётся окно: если Redis упал ровно на время мутации и вернулся до
// следующего чтения, уцелевшая запись может жить до конца PageTTL —
// TTL и выбран коротким как верхняя граница такой рассинхронизации.
func (s *Service) invalidatePages(ctx context.Context) {
	if s.pcache == nil {
		return
	}

	if err := s.pcache.Invalidate(ctx); err != nil {
		log.From(ctx).Warn("page_cache_invalidate_failed",
			slog.String("err", err.Error()),
		)
	}
}
