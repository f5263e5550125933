// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/travel-agency/internal/config"
	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/store"
	"github.com/MKhiriev/travel-agency/internal/validators"
)

type Services struct {
	TourService       TourService
	CarService        CarService
	InsuranceService  InsuranceService
	ReviewService     ReviewService
	NewsletterService NewsletterService
	InquiryService    InquiryService
	AuthService       AuthService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewResourceValidator()
	uow := storages.UnitOfWork

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TourService:       NewTourService(storages.Tours, uow, validator, logger),
		CarService:        NewCarService(storages.Cars, uow, validator, logger),
		InsuranceService:  NewInsuranceService(storages.Insurance, uow, validator, logger),
		ReviewService:     NewReviewService(storages.Reviews, uow, validator, logger),
		NewsletterService: NewNewsletterService(storages.Newsletter, uow, validator, logger),
		InquiryService:    NewInquiryService(storages.Inquiries, uow, validator, logger),
		AuthService:       NewAuthService(storages.Users, uow, validator, cfg.App, logger),
		AppInfoService:    appInfoService,
	}, nil
}
