// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/travel-agency/internal/config"
	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/service"
)

type Handler struct {
	services *service.Services

	// cookieSecure and sessionDuration shape the session cookie.
	cookieSecure    bool
	sessionDuration time.Duration

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		cookieSecure:    cfg.App.CookieSecure,
		sessionDuration: cfg.App.TokenDuration,
		allowedOrigins:  cfg.Server.AllowedOrigins,
		requestTimeout:  cfg.Server.RequestTimeout,
		logger:          logger,
	}
}
