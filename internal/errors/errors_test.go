package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aduvalf/harmonie-site/internal/service"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_email", service.ErrInvalidEmail, http.StatusBadRequest, "invalid_email"},
		{"invalid_argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"invalid_token", service.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
		{"expired_token", service.ErrTokenExpired, http.StatusUnauthorized, "expired_token"},
		{"unauthenticated", service.ErrInvalidSession, http.StatusUnauthorized, "unauthenticated"},
		{"unauthorized", service.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
		{"not_found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"email_taken", service.ErrEmailTaken, http.StatusConflict, "email_taken"},
		{"canceled", context.Canceled, StatusClientClosedRequest, "canceled"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"wrapped", fmt.Errorf("service.VerifyMagicLink: %w", service.ErrTokenExpired), http.StatusUnauthorized, "expired_token"},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/whatever", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()

	WriteError(rec, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "not_found", resp.Error.Code)
	require.Equal(t, "req-123", resp.Error.RequestID)
}
