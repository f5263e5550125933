// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Subscriber is a stored newsletter subscription. Email is unique.
type Subscriber struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Interests StringList
	CreatedAt time.Time
}

// TableName returns the name of the database table associated with Subscriber.
func (Subscriber) TableName() string {
	return "newsletter"
}

type SubscriptionPayload struct {
	Email     Optional[string]     `json:"email,omitzero"`
	FirstName Optional[string]     `json:"firstName,omitzero"`
	LastName  Optional[string]     `json:"lastName,omitzero"`
	Interests Optional[StringList] `json:"interests,omitzero"`
}

func (p SubscriptionPayload) Fields() []string {
	return presentFields(map[string]bool{
		"email":     p.Email.Present(),
		"firstName": p.FirstName.Present(),
		"lastName":  p.LastName.Present(),
		"interests": p.Interests.Present(),
	})
}

type SubscriberView struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Interests StringList `json:"interests"`
	CreatedAt time.Time  `json:"createdAt"`
}
