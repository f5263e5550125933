// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/models"
	sq "github.com/Masterminds/squirrel"
)

// Table maps a record type onto its SQL table.
type Table[T any] struct {
	Name string
	// Columns is the select list, "id" first. Scan reads them in this order.
	Columns []string
	// InsertColumns are written on insert. Values returns them in this order.
	InsertColumns []string
	Values        func(record T) []any
	Scan          func(row RowScanner) (T, error)
}

// ListQuery describes a multi-row select.
type ListQuery struct {
	Where   sq.Sqlizer
	OrderBy []string
	// Limit caps the result when greater than zero.
	Limit uint64
}

// Gateway executes the generic create/read/update/delete statements of one
// table. It holds no connection: every call runs on the given [Querier].
type Gateway[T any] struct {
	db    *DB
	table Table[T]
}

func NewGateway[T any](db *DB, table Table[T]) *Gateway[T] {
	return &Gateway[T]{db: db, table: table}
}

func (g *Gateway[T]) returning() string {
	return "RETURNING " + strings.Join(g.table.Columns, ", ")
}

// Insert stores record and returns it as persisted, with the generated id and
// database defaults filled in.
func (g *Gateway[T]) Insert(ctx context.Context, q Querier, record T) (T, error) {
	var zero T

	query, args, err := g.db.builder.
		Insert(g.table.Name).
		Columns(g.table.InsertColumns...).
		Values(g.table.Values(record)...).
		Suffix(g.returning()).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := g.table.Scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("table", g.table.Name).Msg("insert failed")
		return zero, g.db.classify(err)
	}

	return saved, nil
}

// FindByID returns the record with the given id or [ErrNotFound].
func (g *Gateway[T]) FindByID(ctx context.Context, q Querier, id int64) (T, error) {
	return g.FindOne(ctx, q, sq.Eq{"id": id})
}

// FindOne returns the first record matching where or [ErrNotFound].
func (g *Gateway[T]) FindOne(ctx context.Context, q Querier, where sq.Sqlizer) (T, error) {
	var zero T

	query, args, err := g.db.builder.
		Select(g.table.Columns...).
		From(g.table.Name).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := g.table.Scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return zero, g.db.classify(err)
	}

	return found, nil
}

// FindAll returns every record matching lq. The result is never nil.
func (g *Gateway[T]) FindAll(ctx context.Context, q Querier, lq ListQuery) ([]T, error) {
	builder := g.db.builder.
		Select(g.table.Columns...).
		From(g.table.Name)
	if lq.Where != nil {
		builder = builder.Where(lq.Where)
	}
	if len(lq.OrderBy) > 0 {
		builder = builder.OrderBy(lq.OrderBy...)
	}
	if lq.Limit > 0 {
		builder = builder.Limit(lq.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("table", g.table.Name).Msg("select failed")
		return nil, g.db.classify(err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, scanErr := g.table.Scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, g.db.classify(err)
	}

	return records, nil
}

// Update applies changes to the record with the given id and returns the
// updated record. An empty change set only reads the record back.
func (g *Gateway[T]) Update(ctx context.Context, q Querier, id int64, changes models.Changes) (T, error) {
	var zero T

	if len(changes) == 0 {
		return g.FindByID(ctx, q, id)
	}

	query, args, err := g.db.builder.
		Update(g.table.Name).
		SetMap(changes).
		Where(sq.Eq{"id": id}).
		Suffix(g.returning()).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := g.table.Scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		classified := g.db.classify(err)
		if !errors.Is(classified, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("table", g.table.Name).Int64("id", id).Msg("update failed")
		}
		return zero, classified
	}

	return updated, nil
}

// Delete removes the record with the given id. No cascade is performed.
func (g *Gateway[T]) Delete(ctx context.Context, q Querier, id int64) error {
	query, args, err := g.db.builder.
		Delete(g.table.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("table", g.table.Name).Int64("id", id).Msg("delete failed")
		return g.db.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return g.db.classify(err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
