// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку сервисного слоя (сентинелы service.Err*),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: доменные ошибки internal/service.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aduvalf/harmonie-site/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный
// ответ для фронта.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - несопоставленная ошибка - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	httpStatus, code, msg := mapService(err)
	return httpStatus, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// mapService — базовый маппинг доменных ошибок -> HTTP/FE-код/сообщение.
// Таблица учитывает реальные сентинелы сервисного слоя:
//   - ErrInvalidEmail / ErrInvalidArgument (битые входные) -> 400
//   - ErrInvalidToken / ErrTokenExpired / ErrInvalidSession -> 401
//   - ErrUnauthorized (роль не подходит порталу) -> 403
//   - ErrNotFound -> 404
//   - ErrEmailTaken (конфликт уникальности) -> 409
//   - context.Canceled -> 499 (клиент закрыл соединение)
//   - context.DeadlineExceeded -> 504 (таймаут запроса)
//   - прочее (включая ErrTokenCollision) -> 500/internal
func mapService(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest, "invalid_email", "invalid email"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token", "invalid token"
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, "expired_token", "token expired"
	case errors.Is(err, service.ErrInvalidSession):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusForbidden, "unauthorized", "unauthorized"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, "email_taken", "email already registered"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
