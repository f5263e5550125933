// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "github.com/MKhiriev/travel-agency/models"

// DecodeInquiryCreate builds a new inquiry from the contact form payload.
func DecodeInquiryCreate(p models.InquiryPayload) (models.Inquiry, error) {
	return models.Inquiry{
		Email:     p.Email.OrElse(""),
		ItemType:  p.Kind().OrElse(""),
		ItemID:    p.Item().OrElse("").String(),
		ItemTitle: p.ItemTitle.OrElse(""),
		Status:    p.Status.OrElse(""),
	}, nil
}

// DecodeInquiryPatch maps the present payload fields to column changes.
func DecodeInquiryPatch(p models.InquiryPayload) (models.Changes, error) {
	changes := models.Changes{}
	set(changes, "email", p.Email)
	set(changes, "item_type", p.Kind())
	if itemID, ok := p.Item().Value(); ok {
		changes["item_id"] = itemID.String()
	}
	set(changes, "item_title", p.ItemTitle)
	set(changes, "status", p.Status)
	return changes, nil
}

// DecodeInquiryStatus turns a status update into a single column change.
func DecodeInquiryStatus(p models.InquiryStatusPayload) (models.Changes, error) {
	changes := models.Changes{}
	set(changes, "status", p.Status)
	return changes, nil
}

// EncodeInquiry renders an inquiry for the API.
func EncodeInquiry(i models.Inquiry) models.InquiryView {
	return models.InquiryView{
		ID:        i.ID,
		Email:     i.Email,
		ItemType:  i.ItemType,
		ItemID:    i.ItemID,
		ItemTitle: i.ItemTitle,
		Status:    i.Status,
		CreatedAt: i.CreatedAt.UTC().Format(models.InquiryTimeLayout),
	}
}
