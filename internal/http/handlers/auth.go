package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "github.com/aduvalf/harmonie-site/internal/errors"
	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/service"
)

type magicLinkRequest struct {
	Email string `json:"email"`
}

type magicLinkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// DebugLink заполняется только вне prod (см. service.IssueMagicLink).
	DebugLink string `json:"debug_link,omitempty"`
}

// Текст одинаков для известных и неизвестных адресов.
const magicLinkIssuedMessage = "Si un compte correspond à cette adresse, un lien de connexion a été envoyé."

// IssueAdminMagicLink — POST /api/auth/magic-link.
// Ответ одинаков для известных и неизвестных адресов (анти-перечисление).
func (h *Handlers) IssueAdminMagicLink(w http.ResponseWriter, r *http.Request) {
	h.issueMagicLink(w, r, models.PortalAdmin)
}

// IssueMusicianMagicLink — POST /api/auth/musician-magic-link.
func (h *Handlers) IssueMusicianMagicLink(w http.ResponseWriter, r *http.Request) {
	h.issueMagicLink(w, r, models.PortalMusician)
}

func (h *Handlers) issueMagicLink(w http.ResponseWriter, r *http.Request, portal models.Portal) {
	var in magicLinkRequest
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		in.Email = r.PostFormValue("email")
	} else if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	debugLink, err := h.svc.IssueMagicLink(r.Context(), in.Email, portal)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, magicLinkResponse{
		Success:   true,
		Message:   magicLinkIssuedMessage,
		DebugLink: debugLink,
	})
}

// AdminVerify — GET /admin/verify?token=...
func (h *Handlers) AdminVerify(w http.ResponseWriter, r *http.Request) {
	h.verify(w, r, models.PortalAdmin)
}

// MusicianVerify — GET /musician/verify?token=...
func (h *Handlers) MusicianVerify(w http.ResponseWriter, r *http.Request) {
	h.verify(w, r, models.PortalMusician)
}

// verify обменивает одноразовый токен на сессионную куку портала.
// Успех — редирект на целевую страницу портала; любая ошибка — редирект
// на страницу логина с машиночитаемым кодом в query (?error=...).
func (h *Handlers) verify(w http.ResponseWriter, r *http.Request, portal models.Portal) {
	info := portal.Info()

	sessionID, err := h.svc.VerifyMagicLink(r.Context(), r.URL.Query().Get("token"), portal)
	if err != nil {
		http.Redirect(w, r, info.LoginPath+"?error="+verifyErrorCode(err), http.StatusSeeOther)
		return
	}

	http.SetCookie(w, h.sessionCookie(info.CookieName, sessionID, h.cfg.Auth.SessionTTL))
	http.Redirect(w, r, info.LandingPath, http.StatusSeeOther)
}

// AdminLogout — GET|POST /admin/logout.
func (h *Handlers) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.logout(w, r, models.PortalAdmin)
}

// MusicianLogout — GET|POST /musician/logout.
func (h *Handlers) MusicianLogout(w http.ResponseWriter, r *http.Request) {
	h.logout(w, r, models.PortalMusician)
}

// logout удаляет сессию (идемпотентно) и гасит куку портала.
func (h *Handlers) logout(w http.ResponseWriter, r *http.Request, portal models.Portal) {
	info := portal.Info()

	if c, err := r.Cookie(info.CookieName); err == nil && c.Value != "" {
		if err := h.svc.Logout(r.Context(), c.Value); err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
	}

	expired := h.sessionCookie(info.CookieName, "", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	http.Redirect(w, r, info.LoginPath+"?logout=1", http.StatusSeeOther)
}

type authStatusResponse struct {
	Admin    bool `json:"admin"`
	Musician bool `json:"musician"`
}

// AuthStatus — GET /api/auth/status.
// Проверяет обе портальные куки; ошибки проверки считаются отсутствием сессии.
func (h *Handlers) AuthStatus(w http.ResponseWriter, r *http.Request) {
	out := authStatusResponse{
		Admin:    h.hasSession(r, models.PortalAdmin),
		Musician: h.hasSession(r, models.PortalMusician),
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) hasSession(r *http.Request, portal models.Portal) bool {
	c, err := r.Cookie(portal.Info().CookieName)
	if err != nil || c.Value == "" {
		return false
	}

	_, err = h.svc.VerifySession(r.Context(), c.Value, portal)
	return err == nil
}

func (h *Handlers) sessionCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Auth.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// verifyErrorCode — машиночитаемый код для страницы логина.
func verifyErrorCode(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return "expired_token"
	case errors.Is(err, service.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, service.ErrInvalidToken):
		return "invalid_token"
	default:
		return "server_error"
	}
}
