// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/travel-agency/internal/logger"
)

type unitOfWork struct {
	db *DB
}

// NewUnitOfWork returns a [UnitOfWork] opening its transactions on db.
func NewUnitOfWork(db *DB) UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(q Querier) error) error {
	log := logger.FromContext(ctx)

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*unitOfWork.Do").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*unitOfWork.Do").Msg("error committing transaction")
		return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrCommitingTransaction, err)
	}

	return nil
}
