// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/travel-agency/internal/codec"
	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/store"
	"github.com/MKhiriev/travel-agency/internal/validators"
	"github.com/MKhiriev/travel-agency/models"
)

// NewTourService returns the CRUD service for tours.
func NewTourService(repository store.TourRepository, uow store.UnitOfWork, validator validators.Validator, logger *logger.Logger) TourService {
	return newResourceService("tour", repository, uow, validator, resourceCodec[models.Tour, models.TourPayload, models.TourView]{
		defaults:     validators.WithTourDefaults,
		decodeCreate: codec.DecodeTourCreate,
		decodePatch:  codec.DecodeTourPatch,
		encode:       codec.EncodeTour,
	}, logger)
}

// NewCarService returns the CRUD service for rental cars.
func NewCarService(repository store.CarRepository, uow store.UnitOfWork, validator validators.Validator, logger *logger.Logger) CarService {
	return newResourceService("car", repository, uow, validator, resourceCodec[models.Car, models.CarPayload, models.CarView]{
		defaults:     validators.WithCarDefaults,
		decodeCreate: codec.DecodeCarCreate,
		decodePatch:  codec.DecodeCarPatch,
		encode:       codec.EncodeCar,
	}, logger)
}

// NewInsuranceService returns the CRUD service for insurance plans.
func NewInsuranceService(repository store.InsuranceRepository, uow store.UnitOfWork, validator validators.Validator, logger *logger.Logger) InsuranceService {
	return newResourceService("insurance", repository, uow, validator, resourceCodec[models.Insurance, models.InsurancePayload, models.InsuranceView]{
		defaults:     validators.WithInsuranceDefaults,
		decodeCreate: codec.DecodeInsuranceCreate,
		decodePatch:  codec.DecodeInsurancePatch,
		encode:       codec.EncodeInsurance,
	}, logger)
}

// NewReviewService returns the CRUD service for reviews.
func NewReviewService(repository store.ReviewRepository, uow store.UnitOfWork, validator validators.Validator, logger *logger.Logger) ReviewService {
	return newResourceService("review", repository, uow, validator, resourceCodec[models.Review, models.ReviewPayload, models.ReviewView]{
		defaults:     validators.WithReviewDefaults,
		decodeCreate: codec.DecodeReviewCreate,
		decodePatch:  codec.DecodeReviewPatch,
		encode:       codec.EncodeReview,
	}, logger)
}
