// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/mock"
	"github.com/MKhiriev/travel-agency/internal/service"
	"github.com/MKhiriev/travel-agency/internal/utils"
	"github.com/MKhiriev/travel-agency/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger:          logger.Nop(),
		sessionDuration: testSessionTTL,
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// ---- auth ----

func TestAuth_StoresUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().ParseToken(gomock.Any(), "token").Return(models.Token{UserID: 42}, nil)

	var gotID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = utils.GetUserIDFromContext(r.Context())
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/check", nil))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "token"})
	rr := httptest.NewRecorder()
	newHandlerWithAuthService(authSvc).auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gotOK)
	assert.Equal(t, int64(42), gotID)
}

func TestAuth_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie"},
		{name: "empty cookie", cookie: &http.Cookie{Name: sessionCookieName, Value: ""}},
		{name: "invalid token", cookie: &http.Cookie{Name: sessionCookieName, Value: "forged"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authSvc := mock.NewMockAuthService(ctrl)
			authSvc.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).MaxTimes(1)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/inquiries", nil))
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			newHandlerWithAuthService(authSvc).auth(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, called)
		})
	}
}

// ---- authIfAdmin / privileged ----

func TestAuthIfAdmin_PublicListingSkipsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHandlerWithAuthService(mock.NewMockAuthService(ctrl))

	var isPrivileged bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isPrivileged = privileged(r)
	})

	rr := httptest.NewRecorder()
	h.authIfAdmin(next).ServeHTTP(rr, injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/tours?admin=false", nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, isPrivileged)
}

func TestAuthIfAdmin_AdminListingIsPrivileged(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().ParseToken(gomock.Any(), "token").Return(models.Token{UserID: 1}, nil)

	var isPrivileged bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isPrivileged = privileged(r)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/tours?admin=true", nil))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "token"})
	rr := httptest.NewRecorder()
	newHandlerWithAuthService(authSvc).authIfAdmin(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, isPrivileged)
}

// ---- cookies ----

func TestSessionCookie_SetAndClear(t *testing.T) {
	h := newHandlerWithAuthService(nil)
	h.cookieSecure = true

	rr := httptest.NewRecorder()
	h.setSessionCookie(rr, "signed")
	set := rr.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, "signed", set[0].Value)
	assert.Equal(t, int(time.Hour/time.Second), set[0].MaxAge)
	assert.True(t, set[0].Secure)
	assert.True(t, set[0].HttpOnly)

	rr = httptest.NewRecorder()
	h.clearSessionCookie(rr)
	cleared := rr.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Equal(t, -1, cleared[0].MaxAge)
}
