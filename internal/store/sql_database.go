// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/travel-agency/internal/config"
	"github.com/MKhiriev/travel-agency/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

// DB is an open connection pool together with the SQL dialect of its driver.
// Gateways build their statements with [DB.builder] and translate driver
// errors with the dialect's [ErrorClassificator].
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// NewDB wraps an already opened pool. driver picks the placeholder format and
// the error classifier.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	return db, nil
}

// Driver returns the name of the database/sql driver in use.
func (db *DB) Driver() string {
	return db.driver
}

// classify maps a driver error onto the store sentinels.
func (db *DB) classify(err error) error {
	if err == nil {
		return nil
	}
	return db.errorClassificator.Classify(err)
}
