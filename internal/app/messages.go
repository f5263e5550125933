// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// travel agency HTTP handlers.
//
// All Msg* constants are human-readable strings written into the "message"
// field of successful responses. The storefront and the admin panel match
// some of them literally, so the wording is part of the API.
package app

const (
	// MsgUserCreated answers a successful registration.
	MsgUserCreated = "User created"

	// MsgLoginSuccessful answers a login that issued a session cookie.
	MsgLoginSuccessful = "Login successful"

	// MsgLoggedOut answers a logout, whether or not a session existed.
	MsgLoggedOut = "Successfully logged out"

	// MsgSubscribed answers both a new and a repeated newsletter subscription.
	MsgSubscribed = "Subscribed successfully"

	MsgTourDeleted       = "Deleted successfully"
	MsgCarDeleted        = "Car deleted"
	MsgInsuranceDeleted  = "Insurance deleted"
	MsgReviewDeleted     = "Review deleted"
	MsgSubscriberDeleted = "Subscriber deleted"
	MsgInquiryDeleted    = "Deleted"
)
