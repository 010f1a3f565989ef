package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aduvalf/harmonie-site/internal/config"
	"github.com/aduvalf/harmonie-site/internal/models"
	"github.com/aduvalf/harmonie-site/internal/storage"
	"github.com/aduvalf/harmonie-site/mocks"
)

func testCfg(env string) *config.Config {
	return &config.Config{
		Env: env,
		Site: config.SiteConfig{
			BaseURL: "https://harmonie.example.org/",
		},
		Auth: config.AuthConfig{
			MagicLinkTTL:  15 * time.Minute,
			SessionTTL:    168 * time.Hour,
			SecureCookies: true,
		},
		Timeouts: config.TimeoutConfig{
			Service: 5 * time.Second,
			Mail:    time.Second,
		},
	}
}

func newSvc(t *testing.T, env string) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, testCfg(env))
	return svc, st, ctrl
}

func adminUser(email string) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    email,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
}

func musicianUser(email string) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    email,
		Role:     models.RoleMusician,
		IsActive: true,
	}
}

func TestIssueMagicLink_OK_SendsMailAndReturnsDebugLink(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	mailer := mocks.NewMockMailer(ctrl)
	svc.SetMailer(mailer)

	email := "Admin@Example.com"
	norm := "admin@example.com"

	var savedHash string
	st.EXPECT().UserByEmail(gomock.Any(), norm).Return(adminUser(norm), nil)
	st.EXPECT().SaveAuthToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *models.AuthToken) error {
			require.Equal(t, norm, token.Email)
			require.Equal(t, models.PortalAdmin, token.Portal)
			require.False(t, token.Used)
			require.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), token.ExpiresAt, 2*time.Second)
			savedHash = token.TokenHash
			return nil
		})

	var sentLink string
	mailer.EXPECT().SendMagicLink(gomock.Any(), norm, models.PortalAdmin, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.Portal, link string) error {
			sentLink = link
			return nil
		})

	debugLink, err := svc.IssueMagicLink(context.Background(), email, models.PortalAdmin)
	require.NoError(t, err)
	require.Equal(t, sentLink, debugLink)
	require.True(t, strings.HasPrefix(debugLink, "https://harmonie.example.org/admin/verify?token="))

	// Открытый токен из ссылки должен соответствовать сохранённому хэшу.
	u, err := url.Parse(debugLink)
	require.NoError(t, err)
	plain := u.Query().Get("token")
	require.NotEmpty(t, plain)
	require.Equal(t, savedHash, hashSecret(plain))
}

func TestIssueMagicLink_UnknownEmail_GenericSuccess(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	// Токен не создаётся, письмо не уходит — ответ неотличим от успешного.
	st.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(nil, storage.ErrNotFound)

	debugLink, err := svc.IssueMagicLink(context.Background(), "nobody@example.com", models.PortalAdmin)
	require.NoError(t, err)
	require.Empty(t, debugLink)
}

func TestIssueMagicLink_IneligibleUser_GenericSuccess(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	// Музыкант не проходит в админский портал.
	st.EXPECT().UserByEmail(gomock.Any(), "muso@example.com").Return(musicianUser("muso@example.com"), nil)

	debugLink, err := svc.IssueMagicLink(context.Background(), "muso@example.com", models.PortalAdmin)
	require.NoError(t, err)
	require.Empty(t, debugLink)

	// Деактивированный пользователь — тоже.
	inactive := adminUser("off@example.com")
	inactive.IsActive = false
	st.EXPECT().UserByEmail(gomock.Any(), "off@example.com").Return(inactive, nil)

	debugLink, err = svc.IssueMagicLink(context.Background(), "off@example.com", models.PortalAdmin)
	require.NoError(t, err)
	require.Empty(t, debugLink)
}

func TestIssueMagicLink_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	_, err := svc.IssueMagicLink(context.Background(), "not-an-email", models.PortalAdmin)
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.IssueMagicLink(context.Background(), "   ", models.PortalMusician)
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestIssueMagicLink_ProdHidesDebugLink(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "prod")
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").Return(adminUser("admin@example.com"), nil)
	st.EXPECT().SaveAuthToken(gomock.Any(), gomock.Any()).Return(nil)

	debugLink, err := svc.IssueMagicLink(context.Background(), "admin@example.com", models.PortalAdmin)
	require.NoError(t, err)
	require.Empty(t, debugLink)
}

func TestIssueMagicLink_MailerError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	mailer := mocks.NewMockMailer(ctrl)
	svc.SetMailer(mailer)

	st.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").Return(adminUser("admin@example.com"), nil)
	st.EXPECT().SaveAuthToken(gomock.Any(), gomock.Any()).Return(nil)
	mailer.EXPECT().SendMagicLink(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp down"))

	_, err := svc.IssueMagicLink(context.Background(), "admin@example.com", models.PortalAdmin)
	require.Error(t, err)
}

func TestIssueMagicLink_HashCollision_Retries(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").Return(adminUser("admin@example.com"), nil)
	gomock.InOrder(
		st.EXPECT().SaveAuthToken(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists),
		st.EXPECT().SaveAuthToken(gomock.Any(), gomock.Any()).Return(nil),
	)

	debugLink, err := svc.IssueMagicLink(context.Background(), "admin@example.com", models.PortalAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, debugLink)
}

func validToken(plain, email string, portal models.Portal) *models.AuthToken {
	now := time.Now().UTC()
	return &models.AuthToken{
		TokenHash: hashSecret(plain),
		Email:     email,
		Portal:    portal,
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
		Used:      false,
	}
}

func TestVerifyMagicLink_OK_CreatesSession(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	plain := "magic-token"
	hash := hashSecret(plain)
	user := adminUser("admin@example.com")

	var savedSessionHash string
	st.EXPECT().AuthTokenByHash(gomock.Any(), hash).Return(validToken(plain, user.Email, models.PortalAdmin), nil)
	st.EXPECT().ConsumeAuthToken(gomock.Any(), hash).Return(true, nil)
	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.Session) error {
			require.Equal(t, user.ID, session.UserID)
			require.Equal(t, models.PortalAdmin, session.Portal)
			require.WithinDuration(t, time.Now().UTC().Add(168*time.Hour), session.ExpiresAt, 2*time.Second)
			savedSessionHash = session.SessionHash
			return nil
		})

	sessionID, err := svc.VerifyMagicLink(context.Background(), plain, models.PortalAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	require.Equal(t, savedSessionHash, hashSecret(sessionID))
}

func TestVerifyMagicLink_EmptyOrUnknownToken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	_, err := svc.VerifyMagicLink(context.Background(), "", models.PortalAdmin)
	require.ErrorIs(t, err, ErrInvalidToken)

	st.EXPECT().AuthTokenByHash(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	_, err = svc.VerifyMagicLink(context.Background(), "ghost", models.PortalAdmin)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMagicLink_PortalMismatch(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	plain := "muso-token"
	st.EXPECT().AuthTokenByHash(gomock.Any(), hashSecret(plain)).
		Return(validToken(plain, "muso@example.com", models.PortalMusician), nil)

	// Музыкантский токен не проходит по админскому verify-URL.
	_, err := svc.VerifyMagicLink(context.Background(), plain, models.PortalAdmin)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMagicLink_AlreadyUsed(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	plain := "spent-token"
	token := validToken(plain, "admin@example.com", models.PortalAdmin)
	token.Used = true
	st.EXPECT().AuthTokenByHash(gomock.Any(), hashSecret(plain)).Return(token, nil)

	_, err := svc.VerifyMagicLink(context.Background(), plain, models.PortalAdmin)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMagicLink_Expired(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	plain := "old-token"
	token := validToken(plain, "admin@example.com", models.PortalAdmin)
	token.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	st.EXPECT().AuthTokenByHash(gomock.Any(), hashSecret(plain)).Return(token, nil)

	_, err := svc.VerifyMagicLink(context.Background(), plain, models.PortalAdmin)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyMagicLink_LostConsumeRace(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	plain := "raced-token"
	hash := hashSecret(plain)
	st.EXPECT().AuthTokenByHash(gomock.Any(), hash).
		Return(validToken(plain, "admin@example.com", models.PortalAdmin), nil)
	// Конкурент успел потребить токен между чтением и UPDATE.
	st.EXPECT().ConsumeAuthToken(gomock.Any(), hash).Return(false, nil)

	_, err := svc.VerifyMagicLink(context.Background(), plain, models.PortalAdmin)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMagicLink_UserIneligibleAtVerifyTime(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	plain := "stale-role-token"
	hash := hashSecret(plain)
	user := adminUser("former@example.com")
	user.IsActive = false

	// Деактивация между выпуском и верификацией закрывает вход.
	st.EXPECT().AuthTokenByHash(gomock.Any(), hash).
		Return(validToken(plain, user.Email, models.PortalAdmin), nil)
	st.EXPECT().ConsumeAuthToken(gomock.Any(), hash).Return(true, nil)
	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := svc.VerifyMagicLink(context.Background(), plain, models.PortalAdmin)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyMagicLink_SuperAdminSatisfiesAdminPortal(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t, "local")
	defer ctrl.Finish()

	plain := "super-token"
	hash := hashSecret(plain)
	user := adminUser("root@example.com")
	user.Role = models.RoleSuperAdmin

	st.EXPECT().AuthTokenByHash(gomock.Any(), hash).
		Return(validToken(plain, user.Email, models.PortalAdmin), nil)
	st.EXPECT().ConsumeAuthToken(gomock.Any(), hash).Return(true, nil)
	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	sessionID, err := svc.VerifyMagicLink(context.Background(), plain, models.PortalAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
}
