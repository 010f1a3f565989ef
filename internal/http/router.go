package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aduvalf/harmonie-site/internal/cache"
	"github.com/aduvalf/harmonie-site/internal/config"
	"github.com/aduvalf/harmonie-site/internal/http/handlers"
	"github.com/aduvalf/harmonie-site/internal/http/middleware"
	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// Pages — кеш публичных страниц; nil отключает кеширование.
	Pages cache.PageCache
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, cfg *config.Config, tmpl *template.Template, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),              // безопасно ловим паники
		middleware.RequestID(),            // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),   // кладём request-scoped логгер в контекст и логируем
		middleware.PageCache(opts.Pages),  // отдаём публичные страницы из кеша
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc, cfg, tmpl)
	registerRoutes(root, h, svc)
	return root
}

// registerRoutes — единая точка регистрации всех маршрутов сайта.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service) {
	// публичные страницы
	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/harmonie", h.Harmonie)
	r.Get("/events", h.EventsPage)
	r.Get("/gallery", h.GalleryPage)
	r.Get("/guestbook", h.GuestbookPage)
	r.Get("/tickets", h.TicketsPage)

	// публичный API
	r.Post("/api/guestbook", h.CreateGuestbookEntry)
	r.Post("/api/auth/magic-link", h.IssueAdminMagicLink)
	r.Post("/api/auth/musician-magic-link", h.IssueMusicianMagicLink)
	r.Get("/api/auth/status", h.AuthStatus)

	// админский портал
	r.Get("/admin/login", h.AdminLoginPage)
	r.Get("/admin/verify", h.AdminVerify)
	r.Get("/admin/logout", h.AdminLogout)
	r.Post("/admin/logout", h.AdminLogout)
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequirePortal(svc, models.PortalAdmin, true))
		pr.Get("/admin", h.AdminDashboard)
	})

	// музыкантский портал
	r.Get("/musician/login", h.MusicianLoginPage)
	r.Get("/musician/verify", h.MusicianVerify)
	r.Get("/musician/logout", h.MusicianLogout)
	r.Post("/musician/logout", h.MusicianLogout)
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequirePortal(svc, models.PortalMusician, true))
		pr.Get("/musician/profile", h.MusicianProfile)
	})

	// защищённый админский API
	r.Route("/api/admin", func(ar chi.Router) {
		ar.Use(middleware.RequirePortal(svc, models.PortalAdmin, false))

		ar.Get("/events", h.ListEvents)
		ar.Post("/events", h.CreateEvent)
		ar.Put("/events/{id}", h.UpdateEvent)
		ar.Delete("/events/{id}", h.DeleteEvent)

		ar.Get("/guestbook", h.ListGuestbook)
		ar.Post("/guestbook/{id}/approve", h.ApproveGuestbookEntry)
		ar.Delete("/guestbook/{id}", h.DeleteGuestbookEntry)

		ar.Get("/gallery", h.ListGallery)
		ar.Post("/gallery/presign", h.GalleryPresign)
		ar.Post("/gallery/confirm", h.GalleryConfirm)
		ar.Delete("/gallery/{id}", h.DeleteGalleryImage)

		ar.Get("/musicians", h.ListMusicians)
		ar.Post("/musicians", h.CreateMusician)
	})
}
