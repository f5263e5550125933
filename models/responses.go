// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of calls that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthStatus is the body returned by the session check.
type AuthStatus struct {
	Status string `json:"status"`
	UserID string `json:"userId"`
}

// SubscribeResponse is returned by newsletter subscription. Created is false
// when the email was already subscribed.
type SubscribeResponse struct {
	Message string `json:"message"`
	Created bool   `json:"-"`
}
