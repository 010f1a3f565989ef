package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/aduvalf/harmonie-site/internal/cache"
	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/service"
	"github.com/aduvalf/harmonie-site/mocks"
)

func TestChain_AppliesInOrder(t *testing.T) {
	t.Parallel()

	var got []string
	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = append(got, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), mk("outer"), mk("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner"}, got)
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(CtxRequestID).(string)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	require.Equal(t, seen, rec.Header().Get("X-Request-Id"))

	// Существующий заголовок не перетирается.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "fixed-id", rec.Header().Get("X-Request-Id"))
}

func TestRecover_Returns500WithoutLeak(t *testing.T) {
	t.Parallel()

	h := Recover()(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("secret detail")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "secret detail")
}

func TestPageCache_Hit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pc := mocks.NewMockPageCache(ctrl)
	pc.EXPECT().Get(gomock.Any(), "/events").Return(&cache.Page{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{"text/html; charset=utf-8"}},
		Body:   []byte("cached body"),
	}, nil)

	h := PageCache(pc)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run on cache hit")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "cached body", rec.Body.String())
	require.Equal(t, "HIT", rec.Header().Get("X-Cache"))
}

func TestPageCache_MissStoresResponse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pc := mocks.NewMockPageCache(ctrl)
	pc.EXPECT().Get(gomock.Any(), "/events").Return(nil, cache.ErrMiss)
	pc.EXPECT().Set(gomock.Any(), "/events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, page *cache.Page) error {
			require.Equal(t, http.StatusOK, page.Status)
			require.Equal(t, "fresh body", string(page.Body))
			return nil
		})

	h := PageCache(pc)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("fresh body"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	require.Equal(t, "fresh body", rec.Body.String())
}

func TestPageCache_ErrorResponsesNotCached(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pc := mocks.NewMockPageCache(ctrl)
	pc.EXPECT().Get(gomock.Any(), "/events").Return(nil, cache.ErrMiss)
	// Set не вызывается: статус не 200.

	h := PageCache(pc)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPageCache_SkipsExcludedPaths(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Ни Get, ни Set не ожидаются.
	pc := mocks.NewMockPageCache(ctrl)

	h := PageCache(pc)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/admin", "/api/guestbook", "/musician/profile"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("X-Cache"))
	}
}

func TestPageCache_RedisFailureFailsOpen(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pc := mocks.NewMockPageCache(ctrl)
	pc.EXPECT().Get(gomock.Any(), "/events").Return(nil, errors.New("redis down"))
	pc.EXPECT().Set(gomock.Any(), "/events", gomock.Any()).Return(errors.New("redis down"))

	h := PageCache(pc)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("rendered anyway"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "rendered anyway", rec.Body.String())
}

// stubVerifier — минимальная реализация SessionVerifier для тестов.
type stubVerifier struct {
	user *models.User
	err  error
}

func (s stubVerifier) VerifySession(_ context.Context, _ string, _ models.Portal) (*models.User, error) {
	return s.user, s.err
}

func TestRequirePortal_NoCookie(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run without session")
	})

	// Страницы — редирект на логин.
	h := RequirePortal(stubVerifier{}, models.PortalAdmin, true)(next)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get("Location"))

	// API — 401.
	h = RequirePortal(stubVerifier{}, models.PortalAdmin, false)(next)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/events", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePortal_InvalidSession(t *testing.T) {
	t.Parallel()

	h := RequirePortal(stubVerifier{err: service.ErrInvalidSession}, models.PortalAdmin, false)(
		http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			t.Fatal("handler must not run with invalid session")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/events", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "stale"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePortal_PutsUserInContext(t *testing.T) {
	t.Parallel()

	user := &models.User{Email: "admin@example.com", Role: models.RoleAdmin, IsActive: true}

	h := RequirePortal(stubVerifier{user: user}, models.PortalAdmin, false)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := UserFromContext(r.Context())
			require.True(t, ok)
			require.Equal(t, user.Email, got.Email)
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/events", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "valid"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
