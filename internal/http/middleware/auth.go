package middleware

import (
	"context"
	"net/http"

	apierrors "github.com/aduvalf/harmonie-site/internal/errors"
	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/service"
)

// SessionVerifier — минимальный контракт сервисного слоя для мидлвара.
type SessionVerifier interface {
	VerifySession(ctx context.Context, sessionID string, portal models.Portal) (*models.User, error)
}

// RequirePortal пускает дальше только запросы с валидной сессией нужного портала.
// Пользователь кладётся в контекст (UserFromContext).
//
// Поведение при отказе:
//   - redirectOnFail=true (страницы) — 303 See Other на страницу логина портала;
//   - redirectOnFail=false (JSON API) — 401 unauthenticated.
//
// Кука с чужим порталом или протухшей сессией равнозначна её отсутствию.
func RequirePortal(svc SessionVerifier, portal models.Portal, redirectOnFail bool) Middleware {
	info := portal.Info()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fail := func() {
				if redirectOnFail {
					http.Redirect(w, r, info.LoginPath, http.StatusSeeOther)
					return
				}
				apierrors.WriteError(w, r, service.ErrInvalidSession)
			}

			c, err := r.Cookie(info.CookieName)
			if err != nil || c.Value == "" {
				fail()
				return
			}

			user, err := svc.VerifySession(r.Context(), c.Value, portal)
			if err != nil {
				fail()
				return
			}

			ctx := context.WithValue(r.Context(), ctxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает пользователя, положенного RequirePortal.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(ctxUser).(*models.User)
	return user, ok
}
