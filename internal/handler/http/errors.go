// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingSessionCookie is returned by the auth middleware when the
	// request carries no session cookie.
	ErrMissingSessionCookie = errors.New(`missing cookie "` + sessionCookieName + `"`)

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidGzip is returned when a gzip-encoded body cannot be inflated.
	ErrInvalidGzip = errors.New("invalid gzip body")

	// ErrInvalidID is returned when the {id} path segment is not a positive
	// integer. Such a path never names an existing record.
	ErrInvalidID = errors.New("not found")

	ErrRouteNotFound    = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
