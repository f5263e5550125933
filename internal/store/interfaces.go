// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/travel-agency/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Querier is the subset of *sql.DB and *sql.Tx used by gateways. Passing it
// explicitly lets a service run several gateway calls in one transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RowScanner is implemented by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// ErrorClassificator translates driver errors into the store sentinels
// [ErrNotFound], [ErrConflict] and [ErrPersistence].
type ErrorClassificator interface {
	Classify(err error) error
}

// UnitOfWork runs fn inside a single transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(q Querier) error) error
}

// Repository is the persistence port of one resource collection.
// F is the listing filter of the collection.
type Repository[T any, F any] interface {
	Create(ctx context.Context, q Querier, record T) (T, error)
	FindByID(ctx context.Context, q Querier, id int64) (T, error)
	List(ctx context.Context, q Querier, filter F) ([]T, error)
	Update(ctx context.Context, q Querier, id int64, changes models.Changes) (T, error)
	Delete(ctx context.Context, q Querier, id int64) error
}

type (
	TourRepository       = Repository[models.Tour, models.TourFilter]
	CarRepository        = Repository[models.Car, models.CarFilter]
	InsuranceRepository  = Repository[models.Insurance, models.InsuranceFilter]
	ReviewRepository     = Repository[models.Review, models.ReviewFilter]
	NewsletterRepository = Repository[models.Subscriber, models.NoFilter]
	InquiryRepository    = Repository[models.Inquiry, models.NoFilter]
)

// UserRepository persists administrator accounts.
type UserRepository interface {
	Create(ctx context.Context, q Querier, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, q Querier, username string) (models.User, error)
}
