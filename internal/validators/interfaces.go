// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they are decoded into
// storage records and fills in the documented defaults of create calls.
//
// A Validator called without field names validates a create payload: the
// required fields of the entity must be present and every present field must
// hold an acceptable value. Called with field names it validates an update
// payload: only the named fields are checked and nothing is required.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
