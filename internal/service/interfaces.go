// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/travel-agency/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ResourceService is the create/read/update/delete use case of one resource.
// P is the request payload, V the wire view and F the listing filter.
type ResourceService[P any, V any, F any] interface {
	List(ctx context.Context, filter F) ([]V, error)
	Get(ctx context.Context, id int64) (V, error)
	Create(ctx context.Context, payload P) (V, error)
	// Update applies the fields present in payload and leaves the rest untouched.
	Update(ctx context.Context, id int64, payload P) (V, error)
	Delete(ctx context.Context, id int64) error
}

type (
	TourService      = ResourceService[models.TourPayload, models.TourView, models.TourFilter]
	CarService       = ResourceService[models.CarPayload, models.CarView, models.CarFilter]
	InsuranceService = ResourceService[models.InsurancePayload, models.InsuranceView, models.InsuranceFilter]
	ReviewService    = ResourceService[models.ReviewPayload, models.ReviewView, models.ReviewFilter]
)

type InquiryService interface {
	ResourceService[models.InquiryPayload, models.InquiryView, models.NoFilter]
	UpdateStatus(ctx context.Context, id int64, payload models.InquiryStatusPayload) (models.InquiryView, error)
}

type NewsletterService interface {
	// Subscribe stores a new subscriber. Subscribing an already known email is
	// not an error: created is false and nothing is stored.
	Subscribe(ctx context.Context, payload models.SubscriptionPayload) (created bool, err error)
	List(ctx context.Context) ([]models.SubscriberView, error)
	Delete(ctx context.Context, id int64) error
	// Export writes every subscriber to w as an xlsx workbook.
	Export(ctx context.Context, w io.Writer) error
}

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
