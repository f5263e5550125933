// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Optional carries a single field of a request body and remembers whether the
// field was present at all and whether it was an explicit JSON null.
//
// It is the building block of sparse patches: a zero Optional means "leave the
// stored value untouched", a null Optional means "clear the stored value" and
// a set Optional carries the new value.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Null returns an Optional that represents an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// Present reports whether the field appeared in the request body.
func (o Optional[T]) Present() bool {
	return o.present
}

// IsNull reports whether the field appeared as an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// HasValue reports whether the field carries a non-null value.
func (o Optional[T]) HasValue() bool {
	return o.present && !o.null
}

// Value returns the carried value and whether it is usable.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.HasValue()
}

// OrElse returns the carried value, or def when the field is absent or null.
func (o Optional[T]) OrElse(def T) T {
	if o.HasValue() {
		return o.value
	}
	return def
}

// IsZero lets `omitzero` drop absent fields when a payload is marshaled.
func (o Optional[T]) IsZero() bool {
	return !o.present
}

// UnmarshalJSON is only invoked by encoding/json when the key exists, which is
// what makes absence observable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}

	o.null = false
	return json.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
