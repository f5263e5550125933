// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("s3cret", "pepper")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$2"), "expected a bcrypt digest")
	assert.NotContains(t, digest, "s3cret")

	ok, err := CheckPassword(digest, "s3cret", "pepper")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPassword_Mismatch(t *testing.T) {
	digest, err := HashPassword("s3cret", "pepper")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		pepper   string
	}{
		{name: "wrong password", password: "guess", pepper: "pepper"},
		{name: "wrong pepper", password: "s3cret", pepper: "salt"},
		{name: "empty password", password: "", pepper: "pepper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := CheckPassword(digest, tt.password, tt.pepper)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	ok, err := CheckPassword("not-a-digest", "s3cret", "pepper")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("a", 100)

	digest, err := HashPassword(long, "pepper")
	require.NoError(t, err)

	ok, err := CheckPassword(digest, long[:72], "pepper")
	require.NoError(t, err)
	assert.False(t, ok, "passwords sharing a 72-byte prefix must differ")
}

func TestHashString_Deterministic(t *testing.T) {
	assert.Equal(t, HashString("data", "key"), HashString("data", "key"))
	assert.NotEqual(t, HashString("data", "key"), HashString("data", "other"))
	assert.Len(t, HashString("data", "key"), 64)
}

func TestNewTraceID(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
