// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/travel-agency/internal/codec"
	"github.com/MKhiriev/travel-agency/internal/logger"
	"github.com/MKhiriev/travel-agency/internal/store"
	"github.com/MKhiriev/travel-agency/internal/validators"
	"github.com/MKhiriev/travel-agency/models"
)

// payload is implemented by every sparse request body.
type payload interface {
	Fields() []string
}

// resourceCodec bundles the wire conversions of one resource.
type resourceCodec[T any, P payload, V any] struct {
	defaults     func(P) P
	decodeCreate func(P) (T, error)
	decodePatch  func(P) (models.Changes, error)
	encode       func(T) V
}

// resourceService is the generic ResourceService over a store.Repository.
// Every call runs in its own unit of work.
type resourceService[T any, P payload, V any, F any] struct {
	name       string
	repository store.Repository[T, F]
	uow        store.UnitOfWork
	validator  validators.Validator
	codec      resourceCodec[T, P, V]

	logger *logger.Logger
}

func newResourceService[T any, P payload, V any, F any](
	name string,
	repository store.Repository[T, F],
	uow store.UnitOfWork,
	validator validators.Validator,
	codec resourceCodec[T, P, V],
	logger *logger.Logger,
) *resourceService[T, P, V, F] {
	return &resourceService[T, P, V, F]{
		name:       name,
		repository: repository,
		uow:        uow,
		validator:  validator,
		codec:      codec,
		logger:     logger,
	}
}

func (s *resourceService[T, P, V, F]) List(ctx context.Context, filter F) ([]V, error) {
	log := logger.FromContext(ctx)

	var records []T
	err := s.uow.Do(ctx, func(q store.Querier) error {
		var err error
		records, err = s.repository.List(ctx, q, filter)
		return err
	})
	if err != nil {
		log.Err(err).Str("resource", s.name).Any("filter", filter).Msg("listing failed")
		return nil, fmt.Errorf("%s listing failed: %w", s.name, err)
	}

	return codec.EncodeAll(records, s.codec.encode), nil
}

func (s *resourceService[T, P, V, F]) Get(ctx context.Context, id int64) (V, error) {
	var record T
	err := s.uow.Do(ctx, func(q store.Querier) error {
		var err error
		record, err = s.repository.FindByID(ctx, q, id)
		return err
	})
	if err != nil {
		var zero V
		return zero, fmt.Errorf("%s %d: %w", s.name, id, err)
	}

	return s.codec.encode(record), nil
}

// Create fills the documented defaults, validates the whole payload and
// stores the new record.
func (s *resourceService[T, P, V, F]) Create(ctx context.Context, p P) (V, error) {
	log := logger.FromContext(ctx)
	var zero V

	if s.codec.defaults != nil {
		p = s.codec.defaults(p)
	}
	if err := s.validator.Validate(ctx, p); err != nil {
		log.Debug().Err(err).Str("resource", s.name).Msg("create payload rejected")
		return zero, err
	}

	record, err := s.codec.decodeCreate(p)
	if err != nil {
		return zero, err
	}

	err = s.uow.Do(ctx, func(q store.Querier) error {
		record, err = s.repository.Create(ctx, q, record)
		return err
	})
	if err != nil {
		log.Err(err).Str("resource", s.name).Msg("create failed")
		return zero, fmt.Errorf("%s creation failed: %w", s.name, err)
	}

	return s.codec.encode(record), nil
}

// Update validates only the fields present in p. An empty payload changes
// nothing and returns the current record.
func (s *resourceService[T, P, V, F]) Update(ctx context.Context, id int64, p P) (V, error) {
	log := logger.FromContext(ctx)
	var zero V

	if fields := p.Fields(); len(fields) > 0 {
		if err := s.validator.Validate(ctx, p, fields...); err != nil {
			log.Debug().Err(err).Str("resource", s.name).Int64("id", id).Msg("update payload rejected")
			return zero, err
		}
	}

	changes, err := s.codec.decodePatch(p)
	if err != nil {
		return zero, err
	}

	return s.apply(ctx, id, changes)
}

func (s *resourceService[T, P, V, F]) apply(ctx context.Context, id int64, changes models.Changes) (V, error) {
	var (
		record T
		zero   V
	)
	err := s.uow.Do(ctx, func(q store.Querier) error {
		var err error
		record, err = s.repository.Update(ctx, q, id, changes)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("resource", s.name).Int64("id", id).Strs("columns", changes.Columns()).Msg("update failed")
		return zero, fmt.Errorf("%s %d: %w", s.name, id, err)
	}

	return s.codec.encode(record), nil
}

func (s *resourceService[T, P, V, F]) Delete(ctx context.Context, id int64) error {
	err := s.uow.Do(ctx, func(q store.Querier) error {
		return s.repository.Delete(ctx, q, id)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("resource", s.name).Int64("id", id).Msg("delete failed")
		return fmt.Errorf("%s %d: %w", s.name, id, err)
	}

	return nil
}
