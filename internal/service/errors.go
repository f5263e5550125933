// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown username or a
	// wrong password. Both cases are reported identically.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrUserAlreadyExists is returned by Register for a taken username.
	ErrUserAlreadyExists = errors.New("User already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrExportFailed = errors.New("newsletter export failed")
)
