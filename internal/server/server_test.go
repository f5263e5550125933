// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/travel-agency/internal/config"
	"github.com/MKhiriev/travel-agency/internal/handler"
	httpHandler "github.com/MKhiriev/travel-agency/internal/handler/http"
	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoHandler(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_HTTP(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	handlers := &handler.Handlers{
		HTTP: httpHandler.NewHandler(&service.Services{}, cfg, logger.Nop()),
	}

	s, err := NewServer(handlers, cfg.Server, logger.Nop())

	require.NoError(t, err)
	srv, ok := s.(*server)
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1:0", srv.httpServer.server.Addr)
	assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
	assert.NotNil(t, srv.httpServer.server.Handler)
}

func TestHTTPServer_ShutdownStopsRun(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	done := make(chan struct{})
	go func() {
		h.RunServer()
		close(done)
	}()

	h.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
