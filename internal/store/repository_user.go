// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	users  *Gateway[models.User]
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  NewGateway(db, userTable),
		logger: logger,
	}
}

// Create persists a new account and returns it with the server-assigned
// fields (ID, CreatedAt).
//
// Error handling:
//   - unique violation on username → [ErrConflict].
//   - any other driver-level error → [ErrPersistence].
func (r *userRepository) Create(ctx context.Context, q Querier, user models.User) (models.User, error) {
	created, err := r.users.Insert(ctx, q, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Create").Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

// FindByUsername returns the account with the given username or [ErrNotFound].
func (r *userRepository) FindByUsername(ctx context.Context, q Querier, username string) (models.User, error) {
	found, err := r.users.FindOne(ctx, q, sq.Eq{"username": username})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindByUsername").Msg("error finding user")
		}
		return models.User{}, err
	}

	return found, nil
}
