// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Inquiry is a customer request about a tour, car or insurance plan.
// ItemID is free text and is not checked against the referenced collection.
type Inquiry struct {
	ID        int64
	Email     string
	ItemType  string
	ItemID    string
	ItemTitle string
	Status    string
	CreatedAt time.Time
}

// TableName returns the name of the database table associated with Inquiry.
func (Inquiry) TableName() string {
	return "inquiries"
}

// InquiryPayload is the request body of inquiry create and update calls.
// The booking dialog posts `type` and `id`; both are accepted as aliases.
type InquiryPayload struct {
	Email     Optional[string]     `json:"email,omitzero"`
	ItemType  Optional[string]     `json:"itemType,omitzero"`
	Type      Optional[string]     `json:"type,omitzero"`
	ItemID    Optional[FlexString] `json:"itemId,omitzero"`
	ID        Optional[FlexString] `json:"id,omitzero"`
	ItemTitle Optional[string]     `json:"itemTitle,omitzero"`
	Status    Optional[string]     `json:"status,omitzero"`
}

func (p InquiryPayload) Fields() []string {
	return presentFields(map[string]bool{
		"email":     p.Email.Present(),
		"itemType":  p.ItemType.Present(),
		"type":      p.Type.Present(),
		"itemId":    p.ItemID.Present(),
		"id":        p.ID.Present(),
		"itemTitle": p.ItemTitle.Present(),
		"status":    p.Status.Present(),
	})
}

// Kind returns the item type, falling back to the `type` alias.
func (p InquiryPayload) Kind() Optional[string] {
	if p.ItemType.Present() {
		return p.ItemType
	}
	return p.Type
}

// Item returns the item id, falling back to the `id` alias.
func (p InquiryPayload) Item() Optional[FlexString] {
	if p.ItemID.Present() {
		return p.ItemID
	}
	return p.ID
}

type InquiryView struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	ItemType  string `json:"itemType"`
	ItemID    string `json:"itemId"`
	ItemTitle string `json:"itemTitle"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// InquiryStatusPayload is the body of the dedicated status update call.
type InquiryStatusPayload struct {
	Status Optional[string] `json:"status,omitzero"`
}
