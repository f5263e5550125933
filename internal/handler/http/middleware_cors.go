// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// withCORS admits the configured front-end origins with credentials so that
// the browser sends the session cookie on cross-origin calls.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	originsOk := handlers.AllowedOrigins(h.allowedOrigins)
	methodsOk := handlers.AllowedMethods([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	})
	headersOk := handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization", traceIDHeader})
	exposedOk := handlers.ExposedHeaders([]string{traceIDHeader})

	return handlers.CORS(originsOk, methodsOk, headersOk, exposedOk, handlers.AllowCredentials())
}
