// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "github.com/MKhiriev/travel-agency/models"

// DecodeCarCreate prefers explicit brand and model over the combined name.
func DecodeCarCreate(p models.CarPayload) (models.Car, error) {
	brand, model := splitName(p.Name.OrElse(""))

	return models.Car{
		Brand:        p.Brand.OrElse(brand),
		Model:        p.Model.OrElse(model),
		Category:     p.Category.OrElse(""),
		PricePerDay:  p.Price.OrElse(0),
		Seats:        p.Seats.OrElse(0),
		Transmission: p.Transmission.OrElse(""),
		ImageURL:     p.Image.OrElse(""),
		Features:     p.Features.OrElse(models.StringList{}).Normalize(),
		Reserved:     p.IsReserved.OrElse(false),
		Active:       p.IsActive.OrElse(true),
	}, nil
}

// DecodeCarPatch maps the present payload fields to column changes.
func DecodeCarPatch(p models.CarPayload) (models.Changes, error) {
	changes := models.Changes{}
	if name, ok := p.Name.Value(); ok {
		changes["brand"], changes["model"] = splitName(name)
	}
	set(changes, "brand", p.Brand)
	set(changes, "model", p.Model)
	set(changes, "category", p.Category)
	set(changes, "price_per_day", p.Price)
	set(changes, "seats", p.Seats)
	set(changes, "transmission", p.Transmission)
	set(changes, "image_url", p.Image)
	if features, ok := p.Features.Value(); ok {
		changes["features"] = features.Normalize()
	}
	set(changes, "is_reserved", p.IsReserved)
	set(changes, "is_active", p.IsActive)
	return changes, nil
}

// EncodeCar renders a car for the API, with features never null.
func EncodeCar(c models.Car) models.CarView {
	features := c.Features
	if features == nil {
		features = models.StringList{}
	}

	return models.CarView{
		ID:           c.ID,
		Name:         joinName(c.Brand, c.Model),
		Brand:        c.Brand,
		Model:        c.Model,
		Category:     c.Category,
		Price:        c.PricePerDay,
		Seats:        c.Seats,
		Transmission: c.Transmission,
		Image:        c.ImageURL,
		Features:     features,
		IsReserved:   c.Reserved,
		IsActive:     c.Active,
	}
}
