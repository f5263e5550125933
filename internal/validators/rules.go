// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/travel-agency/models"
)

// rule checks one wire field. A rule never fails for an absent field.
type rule func() error

// ruleSet is the validation table of one payload type, keyed by wire name.
type ruleSet struct {
	rules map[string]rule
	// require runs on create only and reports missing mandatory fields.
	require func() error
}

func (s ruleSet) validate(fields []string) error {
	if len(fields) == 0 {
		if s.require != nil {
			if err := s.require(); err != nil {
				return err
			}
		}
		fields = make([]string, 0, len(s.rules))
		for name := range s.rules {
			fields = append(fields, name)
		}
		sort.Strings(fields)
	}

	for _, field := range fields {
		check, ok := s.rules[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

func requireAll(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

func required[T any](field string, o models.Optional[T]) error {
	if !o.HasValue() {
		return fieldError(field, "is required")
	}
	return nil
}

// notNull accepts any value but an explicit null.
func notNull[T any](field string, o models.Optional[T]) rule {
	return func() error {
		if o.IsNull() {
			return fieldError(field, "must not be null")
		}
		return nil
	}
}

// text rejects null and blank strings.
func text(field string, o models.Optional[string]) rule {
	return func() error {
		if !o.Present() {
			return nil
		}
		v, ok := o.Value()
		if !ok {
			return fieldError(field, "must not be null")
		}
		if strings.TrimSpace(v) == "" {
			return fieldError(field, "must not be empty")
		}
		return nil
	}
}

type number interface {
	~int | ~int64 | ~float64
}

func atLeast[T number](field string, o models.Optional[T], min T) rule {
	return func() error {
		if !o.Present() {
			return nil
		}
		v, ok := o.Value()
		if !ok {
			return fieldError(field, "must not be null")
		}
		if v < min {
			return fieldError(field, fmt.Sprintf("must be at least %v", min))
		}
		return nil
	}
}

func between[T number](field string, o models.Optional[T], min, max T) rule {
	return func() error {
		if !o.Present() {
			return nil
		}
		v, ok := o.Value()
		if !ok {
			return fieldError(field, "must not be null")
		}
		if v < min || v > max {
			return fieldError(field, fmt.Sprintf("must be between %v and %v", min, max))
		}
		return nil
	}
}

// date accepts null and the empty string, both of which clear the date.
func date(field string, o models.Optional[string]) rule {
	return func() error {
		v, ok := o.Value()
		if !ok || v == "" {
			return nil
		}
		if _, err := models.ParseDate(v); err != nil {
			return fieldError(field, "must be a date in YYYY-MM-DD format")
		}
		return nil
	}
}

// reference accepts null and positive ids.
func reference(field string, o models.Optional[int64]) rule {
	return func() error {
		v, ok := o.Value()
		if ok && v <= 0 {
			return fieldError(field, "must be a positive id")
		}
		return nil
	}
}
