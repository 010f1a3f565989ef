package handlers

import (
	"net/http"

	"github.com/aduvalf/harmonie-site/internal/http/middleware"
	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/service"
)

// loginErrorMessages — сообщения для страницы логина по коду из ?error=...
// Коды соответствуют verifyErrorCode.
var loginErrorMessages = map[string]string{
	"invalid_token": "Lien de connexion invalide. Veuillez demander un nouveau lien.",
	"expired_token": "Ce lien de connexion a expiré. Veuillez demander un nouveau lien.",
	"unauthorized":  "Ce compte n'a pas accès à cet espace.",
	"server_error":  "Une erreur est survenue. Veuillez réessayer.",
}

type pageData struct {
	Title string
}

// Home — GET /.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", pageData{Title: "Accueil"})
}

// About — GET /about.
func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "about", pageData{Title: "L'association"})
}

// Harmonie — GET /harmonie.
func (h *Handlers) Harmonie(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "harmonie", pageData{Title: "L'harmonie"})
}

type eventsPageData struct {
	pageData
	Events []models.Event
}

// EventsPage — GET /events.
func (h *Handlers) EventsPage(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.UpcomingEvents(r.Context())
	if err != nil {
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "events", eventsPageData{
		pageData: pageData{Title: "Concerts et évènements"},
		Events:   events,
	})
}

// TicketsPage — GET /tickets: ближайшие события, у которых есть билетная ссылка.
func (h *Handlers) TicketsPage(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.UpcomingEvents(r.Context())
	if err != nil {
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}

	withTickets := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if ev.TicketURL != "" {
			withTickets = append(withTickets, ev)
		}
	}

	h.render(w, r, "tickets", eventsPageData{
		pageData: pageData{Title: "Billetterie"},
		Events:   withTickets,
	})
}

type galleryPageData struct {
	pageData
	Items []service.GalleryItem
}

// GalleryPage — GET /gallery.
func (h *Handlers) GalleryPage(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GalleryItems(r.Context())
	if err != nil {
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "gallery", galleryPageData{
		pageData: pageData{Title: "Galerie photos"},
		Items:    items,
	})
}

type guestbookPageData struct {
	pageData
	Entries []models.GuestbookEntry
}

// GuestbookPage — GET /guestbook: только одобренные записи.
func (h *Handlers) GuestbookPage(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GuestbookEntries(r.Context(), true)
	if err != nil {
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "guestbook", guestbookPageData{
		pageData: pageData{Title: "Livre d'or"},
		Entries:  entries,
	})
}

type loginPageData struct {
	pageData
	Error  string
	Notice string
}

// AdminLoginPage — GET /admin/login.
func (h *Handlers) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_login", loginPageData{
		pageData: pageData{Title: "Espace administration"},
		Error:    loginErrorMessages[r.URL.Query().Get("error")],
		Notice:   logoutNotice(r),
	})
}

// MusicianLoginPage — GET /musician/login.
func (h *Handlers) MusicianLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "musician_login", loginPageData{
		pageData: pageData{Title: "Espace musiciens"},
		Error:    loginErrorMessages[r.URL.Query().Get("error")],
		Notice:   logoutNotice(r),
	})
}

// logoutNotice — подтверждение выхода после редиректа с ?logout=1.
func logoutNotice(r *http.Request) string {
	if r.URL.Query().Get("logout") == "1" {
		return "Vous avez été déconnecté."
	}

	return ""
}

type adminDashboardData struct {
	pageData
	User      *models.User
	Pending   []models.GuestbookEntry
	Events    []models.Event
	Musicians []models.User
	Gallery   []service.GalleryItem
}

// AdminDashboard — GET /admin (защищён RequirePortal).
// Собирает всё, чем управляет админка: модерацию, афишу, музыкантов, галерею.
func (h *Handlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	all, err := h.svc.GuestbookEntries(r.Context(), false)
	if err != nil {
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}
	pending := make([]models.GuestbookEntry, 0, len(all))
	for _, e := range all {
		if !e.Approved {
			pending = append(pending, e)
		}
	}

	events, err := h.svc.UpcomingEvents(r.Context())
	if err != nil {
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}

	musicians, err := h.svc.Musicians(r.Context())
	if err != nil {
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}

	gallery, err := h.svc.GalleryItems(r.Context())
	if err != nil {
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "admin_dashboard", adminDashboardData{
		pageData:  pageData{Title: "Administration"},
		User:      user,
		Pending:   pending,
		Events:    events,
		Musicians: musicians,
		Gallery:   gallery,
	})
}

type musicianProfileData struct {
	pageData
	User   *models.User
	Events []models.Event
}

// MusicianProfile — GET /musician/profile (защищён RequirePortal).
func (h *Handlers) MusicianProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	events, err := h.svc.UpcomingEvents(r.Context())
	if err != nil {
		http.Error(w, "Une erreur est survenue.", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "musician_profile", musicianProfileData{
		pageData: pageData{Title: "Mon espace"},
		User:     user,
		Events:   events,
	})
}
