// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by gateways and repositories to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup, update or delete targets an id
	// that does not exist in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write violates a unique constraint,
	// e.g. a taken username or an already subscribed email.
	ErrConflict = errors.New("record already exists")

	// ErrPersistence wraps every other failure reported by the database driver.
	ErrPersistence = errors.New("persistence error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// gateway methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
