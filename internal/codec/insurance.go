// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "github.com/MKhiriev/travel-agency/models"

// DecodeInsuranceCreate builds a new insurance plan from the payload.
func DecodeInsuranceCreate(p models.InsurancePayload) (models.Insurance, error) {
	return models.Insurance{
		Name:        p.Name.OrElse(""),
		PriceDaily:  p.Price.OrElse(0),
		Description: p.Description.OrElse(""),
		ImageURL:    p.Image.OrElse(""),
		Features:    p.Features.OrElse(""),
		Featured:    p.Featured.OrElse(false),
	}, nil
}

// DecodeInsurancePatch maps the present payload fields to column changes.
func DecodeInsurancePatch(p models.InsurancePayload) (models.Changes, error) {
	changes := models.Changes{}
	set(changes, "name", p.Name)
	set(changes, "price_daily", p.Price)
	set(changes, "description", p.Description)
	set(changes, "image_url", p.Image)
	set(changes, "features", p.Features)
	set(changes, "is_featured", p.Featured)
	return changes, nil
}

// EncodeInsurance renders an insurance plan for the API.
func EncodeInsurance(i models.Insurance) models.InsuranceView {
	return models.InsuranceView{
		ID:          i.ID,
		Name:        i.Name,
		Price:       i.PriceDaily,
		Description: i.Description,
		Image:       i.ImageURL,
		Features:    i.Features,
		Featured:    i.Featured,
	}
}
