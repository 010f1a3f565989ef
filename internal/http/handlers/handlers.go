package handlers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aduvalf/harmonie-site/internal/config"
	logctx "github.com/aduvalf/harmonie-site/internal/pkg/log"
	"github.com/aduvalf/harmonie-site/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	svc  *service.Service
	cfg  *config.Config
	tmpl *template.Template
}

func New(svc *service.Service, cfg *config.Config, tmpl *template.Template) *Handlers {
	return &Handlers{svc: svc, cfg: cfg, tmpl: tmpl}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// isForm сообщает, пришёл ли запрос обычной HTML-формой.
// Публичные эндпойнты принимают и форму, и JSON.
func isForm(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}

// render буферизует шаблон целиком, чтобы при ошибке рендера не отдать
// клиенту полуотрендеренную страницу.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logctx.From(r.Context()).Error("template_render_failed",
			slog.String("template", name),
			slog.String("err", err.Error()))
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
