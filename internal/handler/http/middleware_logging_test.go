// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// requestWithLogger puts a buffer-backed zerolog.Logger into the request
// context the same way withTraceID does.
func requestWithLogger(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/tours?featured=true",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/tours?featured=true"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/api/inquiries",
			handlerStatus:   http.StatusCreated,
			handlerResponse: `{"id":1}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":201`,
				`"size":8`,
			},
		},
		{
			name:          "DELETE 401 no body",
			method:        http.MethodDelete,
			path:          "/api/cars/1",
			handlerStatus: http.StatusUnauthorized,
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"status":401`,
				`"size":0`,
			},
		},
	}

	h := NewHandler(&service.Services{}, testConfig(), logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, requestWithLogger(tt.method, tt.path, &buf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, testConfig(), logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dev"))
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/api/version", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":3`)
}
