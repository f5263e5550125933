// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// migrationDirs maps a database/sql driver name to its migration directory
// and goose dialect.
var migrationDirs = map[string]struct {
	dir     string
	dialect goose.Dialect
}{
	"pgx":     {dir: "postgres", dialect: goose.DialectPostgres},
	"sqlite3": {dir: "sqlite", dialect: goose.DialectSQLite3},
}

// Migrate applies every pending migration of driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	target, ok := migrationDirs[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(target.dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
