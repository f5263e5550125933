// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/travel-agency/internal/codec"
	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/store"
	"github.com/MKhiriev/travel-agency/internal/validators"
	"github.com/MKhiriev/travel-agency/models"
)

type inquiryService struct {
	*resourceService[models.Inquiry, models.InquiryPayload, models.InquiryView, models.NoFilter]
}

// NewInquiryService returns the InquiryService. New inquiries always start
// with status "new" whatever the client sent.
func NewInquiryService(repository store.InquiryRepository, uow store.UnitOfWork, validator validators.Validator, logger *logger.Logger) InquiryService {
	return &inquiryService{
		resourceService: newResourceService("inquiry", repository, uow, validator, resourceCodec[models.Inquiry, models.InquiryPayload, models.InquiryView]{
			defaults:     validators.WithInquiryDefaults,
			decodeCreate: codec.DecodeInquiryCreate,
			decodePatch:  codec.DecodeInquiryPatch,
			encode:       codec.EncodeInquiry,
		}, logger),
	}
}

// UpdateStatus sets the processing status of an inquiry.
func (s *inquiryService) UpdateStatus(ctx context.Context, id int64, p models.InquiryStatusPayload) (models.InquiryView, error) {
	if err := s.validator.Validate(ctx, p); err != nil {
		return models.InquiryView{}, err
	}

	changes, err := codec.DecodeInquiryStatus(p)
	if err != nil {
		return models.InquiryView{}, err
	}

	return s.apply(ctx, id, changes)
}
