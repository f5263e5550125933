// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt digest of password mixed with pepper.
//
// The password is first reduced with HMAC-SHA256 keyed by pepper, so inputs
// longer than bcrypt's 72-byte limit are not truncated and a leaked digest is
// useless without the pepper.
//
// Example usage:
//
//	digest, err := utils.HashPassword("s3cret", cfg.App.PasswordHashKey)
func HashPassword(password, pepper string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(HashString(password, pepper)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether password, mixed with pepper, matches digest.
// A malformed digest is reported as an error, a mismatch is not.
func CheckPassword(digest, password, pepper string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(HashString(password, pepper)))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password: %w", err)
	}
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
