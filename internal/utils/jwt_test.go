// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	key := "secret-key"
	duration := time.Minute * 5

	// First generate a valid token
	genToken, _ := GenerateJWTToken(issuer, userID, duration, key)

	// Now validate it
	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken(issuer, 1, time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	// Token that expired 1 second ago
	genToken, _ := GenerateJWTToken(issuer, 1, -time.Second, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired in chain, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", 1, time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	key := "key"
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, key, "iss"); err == nil {
		t.Error("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_NonNumericSubject(t *testing.T) {
	key := "key"
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, key, "iss"); err == nil {
		t.Error("expected error for non-numeric subject, got nil")
	}
}

func TestValidateAndParseJWTToken_KeepsClaims(t *testing.T) {
	key := "secret-key"
	genToken, err := GenerateJWTToken("test-issuer", 42, time.Hour, key)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, key, "test-issuer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	if parsed.Subject != "42" {
		t.Errorf("expected subject '42', got %q", parsed.Subject)
	}
	if parsed.Issuer != "test-issuer" {
		t.Errorf("expected issuer 'test-issuer', got %q", parsed.Issuer)
	}
	if parsed.String() != genToken.SignedString {
		t.Error("expected parsed token to keep its signed string")
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		t.Fatalf("expected GetUserID to succeed, got: %v", err)
	}
	if userID != 42 || parsed.UserID != 42 {
		t.Errorf("expected userID 42, got GetUserID()=%d UserID=%d", userID, parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	key := "key"
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, key, "iss"); err == nil {
		t.Error("expected error for missing subject, got nil")
	}
}
