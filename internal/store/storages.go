// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/travel-agency/internal/logger"

// Storages bundles every repository of the application together with the
// unit of work that scopes their calls.
type Storages struct {
	UnitOfWork UnitOfWork

	Tours      TourRepository
	Cars       CarRepository
	Insurance  InsuranceRepository
	Reviews    ReviewRepository
	Newsletter NewsletterRepository
	Inquiries  InquiryRepository
	Users      UserRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UnitOfWork: NewUnitOfWork(db),
		Tours:      NewTourRepository(db, log),
		Cars:       NewCarRepository(db, log),
		Insurance:  NewInsuranceRepository(db, log),
		Reviews:    NewReviewRepository(db, log),
		Newsletter: NewNewsletterRepository(db, log),
		Inquiries:  NewInquiryRepository(db, log),
		Users:      NewUserRepository(db, log),
	}
}
