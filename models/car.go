// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Car is the stored representation of a rental car.
//
// Reserved and Active are independent: Active hides the car from the offer
// entirely, Reserved marks it as currently taken.
type Car struct {
	ID           int64
	Brand        string
	Model        string
	Category     string
	PricePerDay  float64
	Seats        int
	Transmission string
	ImageURL     string
	Features     StringList
	Reserved     bool
	Active       bool
}

// TableName returns the name of the database table associated with Car.
func (Car) TableName() string {
	return "cars"
}

// CarPayload is the request body of car create and update calls.
// Name is accepted in place of Brand and Model and is split on its first space.
type CarPayload struct {
	Name         Optional[string]     `json:"name,omitzero"`
	Brand        Optional[string]     `json:"brand,omitzero"`
	Model        Optional[string]     `json:"model,omitzero"`
	Category     Optional[string]     `json:"category,omitzero"`
	Price        Optional[float64]    `json:"price,omitzero"`
	Seats        Optional[int]        `json:"seats,omitzero"`
	Transmission Optional[string]     `json:"transmission,omitzero"`
	Image        Optional[string]     `json:"image,omitzero"`
	Features     Optional[StringList] `json:"features,omitzero"`
	IsReserved   Optional[bool]       `json:"isReserved,omitzero"`
	IsActive     Optional[bool]       `json:"isActive,omitzero"`
}

func (p CarPayload) Fields() []string {
	return presentFields(map[string]bool{
		"name":         p.Name.Present(),
		"brand":        p.Brand.Present(),
		"model":        p.Model.Present(),
		"category":     p.Category.Present(),
		"price":        p.Price.Present(),
		"seats":        p.Seats.Present(),
		"transmission": p.Transmission.Present(),
		"image":        p.Image.Present(),
		"features":     p.Features.Present(),
		"isReserved":   p.IsReserved.Present(),
		"isActive":     p.IsActive.Present(),
	})
}

// CarView is the wire representation of a car.
type CarView struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	Seats        int        `json:"seats"`
	Transmission string     `json:"transmission"`
	Image        string     `json:"image"`
	Features     StringList `json:"features"`
	IsReserved   bool       `json:"isReserved"`
	IsActive     bool       `json:"isActive"`
}

// CarFilter holds the optional criteria of a car listing.
type CarFilter struct {
	// Category is matched exactly when non-empty.
	Category string
	// Privileged lists inactive and reserved cars as well.
	Privileged bool
}
