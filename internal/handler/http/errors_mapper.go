// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/service"
	"github.com/MKhiriev/travel-agency/internal/store"
	"github.com/MKhiriev/travel-agency/internal/utils"
	"github.com/MKhiriev/travel-agency/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidInput: http.StatusBadRequest,
	ErrInvalidJSON:             http.StatusBadRequest,
	ErrInvalidGzip:             http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrMissingSessionCookie:            http.StatusUnauthorized,

	ErrInvalidID:        http.StatusNotFound,
	ErrRouteNotFound:    http.StatusNotFound,
	store.ErrNotFound:   http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	service.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrConflict:            http.StatusBadRequest,

	store.ErrPersistence:    http.StatusInternalServerError,
	service.ErrExportFailed: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text of the JSON error body. Field errors and
// the auth sentinels are reported without their wrapping context, anything
// else is passed through as is.
func messageFromError(err error) string {
	var fieldErr *validators.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return fieldErr.Error()
	case errors.Is(err, service.ErrUserAlreadyExists):
		return service.ErrUserAlreadyExists.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return service.ErrInvalidCredentials.Error()
	}
	return err.Error()
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err), status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed)
}
