// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/travel-agency/internal/config"
	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/store"
	"github.com/MKhiriev/travel-agency/internal/utils"
	"github.com/MKhiriev/travel-agency/internal/validators"
	"github.com/MKhiriev/travel-agency/models"
)

// authService is the concrete implementation of AuthService.
// It handles administrator registration, credential verification and the
// session token lifecycle. Passwords are peppered with HMAC-SHA256 and then
// hashed with bcrypt.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	uow       store.UnitOfWork
	validator validators.Validator

	// hashKey is the pepper mixed into every password before hashing.
	// Must match the value used at registration time.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, uow store.UnitOfWork, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uow:            uow,
		validator:      validator,
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new administrator account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - validators.ErrInvalidInput if username or password is empty.
//   - ErrUserAlreadyExists if the username is taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, err
	}

	digest, err := utils.HashPassword(credentials.Password, a.hashKey)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{Username: credentials.Username, PasswordHash: digest}
	err = a.uow.Do(ctx, func(q store.Querier) error {
		user, err = a.userRepository.Create(ctx, q, user)
		return err
	})
	if errors.Is(err, store.ErrConflict) {
		log.Info().Str("username", credentials.Username).Msg("username is already taken")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing administrator.
//
// A missing field, an unknown username and a wrong password are all reported
// as ErrInvalidCredentials. Storage failures are returned wrapped.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	var user models.User
	err := a.uow.Do(ctx, func(q store.Querier) error {
		var err error
		user, err = a.userRepository.FindByUsername(ctx, q, credentials.Username)
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("username", credentials.Username).Msg("login with unknown username")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.CheckPassword(user.PasswordHash, credentials.Password, a.hashKey)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("stored password hash is unreadable")
		return models.User{}, fmt.Errorf("password check failed: %w", err)
	}
	if !ok {
		log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
