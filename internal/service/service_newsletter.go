// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/travel-agency/internal/codec"
	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/store"
	"github.com/MKhiriev/travel-agency/internal/validators"
	"github.com/MKhiriev/travel-agency/models"
	"github.com/xuri/excelize/v2"
)

// ExportSheetName is the worksheet holding the subscriber rows of an export.
const ExportSheetName = "Subscribers"

var exportHeaders = []string{"ID", "Email", "First name", "Last name", "Interests", "Subscribed at"}

type newsletterService struct {
	repository store.NewsletterRepository
	uow        store.UnitOfWork
	validator  validators.Validator

	logger *logger.Logger
}

// NewNewsletterService returns the service for newsletter subscriptions.
func NewNewsletterService(repository store.NewsletterRepository, uow store.UnitOfWork, validator validators.Validator, logger *logger.Logger) NewsletterService {
	return &newsletterService{
		repository: repository,
		uow:        uow,
		validator:  validator,
		logger:     logger,
	}
}

// Subscribe relies on the unique email constraint: a conflicting insert means
// the address is already subscribed.
func (s *newsletterService) Subscribe(ctx context.Context, p models.SubscriptionPayload) (bool, error) {
	log := logger.FromContext(ctx)

	p = validators.WithSubscriptionDefaults(p)
	if err := s.validator.Validate(ctx, p); err != nil {
		return false, err
	}

	subscriber, err := codec.DecodeSubscriptionCreate(p)
	if err != nil {
		return false, err
	}

	err = s.uow.Do(ctx, func(q store.Querier) error {
		_, err := s.repository.Create(ctx, q, subscriber)
		return err
	})
	if errors.Is(err, store.ErrConflict) {
		log.Debug().Str("email", subscriber.Email).Msg("email is already subscribed")
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("email", subscriber.Email).Msg("subscription failed")
		return false, fmt.Errorf("subscription failed: %w", err)
	}

	return true, nil
}

func (s *newsletterService) List(ctx context.Context) ([]models.SubscriberView, error) {
	subscribers, err := s.subscribers(ctx)
	if err != nil {
		return nil, err
	}
	return codec.EncodeAll(subscribers, codec.EncodeSubscriber), nil
}

func (s *newsletterService) Delete(ctx context.Context, id int64) error {
	err := s.uow.Do(ctx, func(q store.Querier) error {
		return s.repository.Delete(ctx, q, id)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("subscriber deletion failed")
		return fmt.Errorf("subscriber %d: %w", id, err)
	}
	return nil
}

// Export writes one header row and one row per subscriber, ordered by id.
func (s *newsletterService) Export(ctx context.Context, w io.Writer) error {
	log := logger.FromContext(ctx)

	subscribers, err := s.subscribers(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err = f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	if err = f.SetSheetRow(ExportSheetName, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	for i, sub := range subscribers {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExportFailed, err)
		}
		row := []any{
			sub.ID,
			sub.Email,
			sub.FirstName,
			sub.LastName,
			sub.Interests.Join(),
			sub.CreatedAt.UTC().Format(time.DateTime),
		}
		if err = f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return fmt.Errorf("%w: %w", ErrExportFailed, err)
		}
	}

	if err = f.Write(w); err != nil {
		log.Err(err).Msg("writing newsletter export failed")
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	log.Info().Int("rows", len(subscribers)).Msg("newsletter exported")
	return nil
}

func (s *newsletterService) subscribers(ctx context.Context) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := s.uow.Do(ctx, func(q store.Querier) error {
		var err error
		subscribers, err = s.repository.List(ctx, q, models.NoFilter{})
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("subscriber listing failed")
		return nil, fmt.Errorf("subscriber listing failed: %w", err)
	}
	return subscribers, nil
}
