// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/travel-agency/internal/logger"
)

// repository is the [Repository] of one resource collection: a [Gateway]
// plus the translation of the collection's filter into a [ListQuery].
type repository[T any, F any] struct {
	*Gateway[T]
	listQuery func(F) ListQuery
	// keep, when it returns a non-nil func, drops listed records the
	// database cannot filter portably.
	keep func(F) func(T) bool
}

func newRepository[T any, F any](db *DB, table Table[T], listQuery func(F) ListQuery, log *logger.Logger) *repository[T, F] {
	log.Debug().Str("table", table.Name).Msg("creating repository")
	return &repository[T, F]{
		Gateway:   NewGateway(db, table),
		listQuery: listQuery,
	}
}

func (r *repository[T, F]) Create(ctx context.Context, q Querier, record T) (T, error) {
	return r.Insert(ctx, q, record)
}

func (r *repository[T, F]) List(ctx context.Context, q Querier, filter F) ([]T, error) {
	records, err := r.FindAll(ctx, q, r.listQuery(filter))
	if err != nil {
		return nil, err
	}

	if r.keep == nil {
		return records, nil
	}
	keep := r.keep(filter)
	if keep == nil {
		return records, nil
	}

	kept := records[:0]
	for _, record := range records {
		if keep(record) {
			kept = append(kept, record)
		}
	}
	return kept, nil
}

func NewTourRepository(db *DB, log *logger.Logger) TourRepository {
	repo := newRepository(db, tourTable, tourListQuery, log)
	repo.keep = tourFitsGuests
	return repo
}

func NewCarRepository(db *DB, log *logger.Logger) CarRepository {
	return newRepository(db, carTable, carListQuery, log)
}

func NewInsuranceRepository(db *DB, log *logger.Logger) InsuranceRepository {
	return newRepository(db, insuranceTable, insuranceListQuery, log)
}

func NewReviewRepository(db *DB, log *logger.Logger) ReviewRepository {
	return newRepository(db, reviewTable, reviewListQuery, log)
}

func NewNewsletterRepository(db *DB, log *logger.Logger) NewsletterRepository {
	return newRepository(db, subscriberTable, subscriberListQuery, log)
}

func NewInquiryRepository(db *DB, log *logger.Logger) InquiryRepository {
	return newRepository(db, inquiryTable, inquiryListQuery, log)
}
