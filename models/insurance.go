// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Insurance is the stored representation of a travel insurance plan.
// Features is an opaque string whose format is owned by the front end.
type Insurance struct {
	ID          int64
	Name        string
	PriceDaily  float64
	Description string
	ImageURL    string
	Features    string
	Featured    bool
}

// TableName returns the name of the database table associated with Insurance.
func (Insurance) TableName() string {
	return "insurances"
}

type InsurancePayload struct {
	Name        Optional[string]  `json:"name,omitzero"`
	Price       Optional[float64] `json:"price,omitzero"`
	Description Optional[string]  `json:"description,omitzero"`
	Image       Optional[string]  `json:"image,omitzero"`
	Features    Optional[string]  `json:"features,omitzero"`
	Featured    Optional[bool]    `json:"featured,omitzero"`
}

func (p InsurancePayload) Fields() []string {
	return presentFields(map[string]bool{
		"name":        p.Name.Present(),
		"price":       p.Price.Present(),
		"description": p.Description.Present(),
		"image":       p.Image.Present(),
		"features":    p.Features.Present(),
		"featured":    p.Featured.Present(),
	})
}

type InsuranceView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Features    string  `json:"features"`
	Featured    bool    `json:"featured"`
}

type InsuranceFilter struct {
	FeaturedOnly bool
}
