// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec maps request payloads to storage records and sparse patches,
// and storage records back to their wire views.
//
// Decoders expect a payload that already passed validation; create decoders
// additionally expect the documented defaults to be filled in. A malformed
// value that slipped through is still reported as invalid input.
package codec
