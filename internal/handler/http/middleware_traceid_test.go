// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	t.Run("trace ID from request header is reused", func(t *testing.T) {
		rr, req := executeWithTraceID(h, "my-custom-trace-id")

		require.NotNil(t, req)
		assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
	})

	t.Run("trace ID is generated when absent", func(t *testing.T) {
		rr, req := executeWithTraceID(h, "")

		require.NotNil(t, req)
		id, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
	})

	t.Run("request logger is attached", func(t *testing.T) {
		_, req := executeWithTraceID(h, "abc")

		assert.NotNil(t, logger.FromRequest(req))
	})

	t.Run("generated IDs differ between requests", func(t *testing.T) {
		rr1, _ := executeWithTraceID(h, "")
		rr2, _ := executeWithTraceID(h, "")

		assert.NotEqual(t, rr1.Header().Get(traceIDHeader), rr2.Header().Get(traceIDHeader))
	})
}
