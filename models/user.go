// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an administrator account. Every user has full admin rights.
type User struct {
	// ID is the internal unique identifier of the user and the token subject.
	ID int64 `json:"-"`

	// Username is unique across accounts.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the peppered password.
	// It must never leave the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body of register and login calls.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
