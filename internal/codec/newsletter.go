// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"strings"

	"github.com/MKhiriev/travel-agency/models"
)

// DecodeSubscriptionCreate lower-cases the email so that uniqueness does not
// depend on how the address was typed.
func DecodeSubscriptionCreate(p models.SubscriptionPayload) (models.Subscriber, error) {
	return models.Subscriber{
		Email:     NormalizeEmail(p.Email.OrElse("")),
		FirstName: p.FirstName.OrElse(""),
		LastName:  p.LastName.OrElse(""),
		Interests: p.Interests.OrElse(models.StringList{}).Normalize(),
	}, nil
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EncodeSubscriber renders a newsletter subscriber for the API.
func EncodeSubscriber(s models.Subscriber) models.SubscriberView {
	interests := s.Interests
	if interests == nil {
		interests = models.StringList{}
	}

	return models.SubscriberView{
		ID:        s.ID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Interests: interests,
		CreatedAt: s.CreatedAt.UTC(),
	}
}
