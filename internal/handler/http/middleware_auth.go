// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/utils"
)

// sessionCookieName is the HTTP-only cookie holding the signed session token.
const sessionCookieName = "access_token_cookie"

// auth is an HTTP middleware that enforces cookie-based sessions.
//
// It reads the session cookie, validates the token via
// [service.AuthService.ParseToken] and, on success, stores the user's ID in
// the request context under [utils.UserIDCtxKey] before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the cookie
// is absent or empty ([ErrMissingSessionCookie]) and when the token is
// expired, signed with another key or issued by another issuer.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, r, ErrMissingSessionCookie)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, r, err)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authIfAdmin requires a session only for admin=true listings.
func (h *Handler) authIfAdmin(next http.Handler) http.Handler {
	protected := h.auth(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAdminRequest(r) {
			protected.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// privileged reports whether r is an admin listing made within a session.
func privileged(r *http.Request) bool {
	if !isAdminRequest(r) {
		return false
	}
	_, ok := utils.GetUserIDFromContext(r.Context())
	return ok
}

func isAdminRequest(r *http.Request) bool {
	return r.URL.Query().Get("admin") == "true"
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionDuration / time.Second),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
