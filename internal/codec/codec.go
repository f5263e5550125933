// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/travel-agency/internal/validators"
	"github.com/MKhiriev/travel-agency/models"
)

// EncodeAll encodes every record with encode. The result is never nil.
func EncodeAll[T, V any](records []T, encode func(T) V) []V {
	views := make([]V, 0, len(records))
	for _, r := range records {
		views = append(views, encode(r))
	}
	return views
}

// set copies a present, non-null field into changes under column.
func set[T any](changes models.Changes, column string, o models.Optional[T]) {
	if v, ok := o.Value(); ok {
		changes[column] = v
	}
}

// decodeDate turns a wire date into a nullable record date.
// Null and the empty string both mean "no date".
func decodeDate(field string, o models.Optional[string]) (*models.Date, error) {
	v, ok := o.Value()
	if !ok || v == "" {
		return nil, nil
	}
	d, err := models.ParseDate(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format", validators.ErrInvalidInput, field)
	}
	return &d, nil
}

// setDate records a present date field, including an explicit clear.
func setDate(changes models.Changes, column, field string, o models.Optional[string]) error {
	if !o.Present() {
		return nil
	}
	d, err := decodeDate(field, o)
	if err != nil {
		return err
	}
	if d == nil {
		changes[column] = nil
		return nil
	}
	changes[column] = *d
	return nil
}

// splitName splits a combined car name on its first space.
func splitName(name string) (brand, model string) {
	name = strings.TrimSpace(name)
	brand, model, _ = strings.Cut(name, " ")
	return brand, strings.TrimSpace(model)
}

// joinName renders the display name of a car.
func joinName(brand, model string) string {
	return strings.TrimSpace(brand + " " + model)
}
