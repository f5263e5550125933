// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/travel-agency/internal/app"
	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/service"
	"github.com/MKhiriev/travel-agency/internal/utils"
	"github.com/MKhiriev/travel-agency/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserCreated}, http.StatusCreated)
}

// login answers 401 for malformed bodies as well: every failed login looks
// the same to the client.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		log.Debug().Err(err).Msg("unreadable login body")
		writeError(w, r, service.ErrInvalidCredentials)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	h.setSessionCookie(w, token.String())
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoginSuccessful}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	utils.WriteJSON(w, models.AuthStatus{
		Status: "authenticated",
		UserID: strconv.FormatInt(userID, 10),
	}, http.StatusOK)
}
