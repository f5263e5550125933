// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Tour is the stored representation of an organised trip offered on the site.
type Tour struct {
	ID           int64
	Title        string
	Description  string
	Price        float64
	Duration     string
	GroupSize    string
	Rating       float64
	ReviewsCount int
	ImageURL     string
	Location     string
	Region       string
	Featured     bool
	Active       bool
	StartDate    *Date
	EndDate      *Date
	CreatedAt    time.Time
}

// TableName returns the name of the database table associated with Tour.
func (Tour) TableName() string {
	return "tours"
}

// TourPayload is the request body of tour create and update calls.
// Every field is optional at the type level; required-ness is decided by the
// validator for the operation at hand.
type TourPayload struct {
	Title       Optional[string]     `json:"title,omitzero"`
	Description Optional[string]     `json:"description,omitzero"`
	Price       Optional[float64]    `json:"price,omitzero"`
	Duration    Optional[string]     `json:"duration,omitzero"`
	GroupSize   Optional[FlexString] `json:"groupSize,omitzero"`
	Rating      Optional[float64]    `json:"rating,omitzero"`
	Reviews     Optional[int]        `json:"reviews,omitzero"`
	Image       Optional[string]     `json:"image,omitzero"`
	Location    Optional[string]     `json:"location,omitzero"`
	Region      Optional[string]     `json:"region,omitzero"`
	Featured    Optional[bool]       `json:"featured,omitzero"`
	IsActive    Optional[bool]       `json:"isActive,omitzero"`
	StartDate   Optional[string]     `json:"startDate,omitzero"`
	EndDate     Optional[string]     `json:"endDate,omitzero"`
}

// Fields lists the wire names of the fields present in the payload.
func (p TourPayload) Fields() []string {
	return presentFields(map[string]bool{
		"title":       p.Title.Present(),
		"description": p.Description.Present(),
		"price":       p.Price.Present(),
		"duration":    p.Duration.Present(),
		"groupSize":   p.GroupSize.Present(),
		"rating":      p.Rating.Present(),
		"reviews":     p.Reviews.Present(),
		"image":       p.Image.Present(),
		"location":    p.Location.Present(),
		"region":      p.Region.Present(),
		"featured":    p.Featured.Present(),
		"isActive":    p.IsActive.Present(),
		"startDate":   p.StartDate.Present(),
		"endDate":     p.EndDate.Present(),
	})
}

// TourView is the wire representation of a tour.
type TourView struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	GroupSize   string  `json:"groupSize"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image"`
	Location    string  `json:"location"`
	Region      string  `json:"region"`
	Featured    bool    `json:"featured"`
	StartDate   *Date   `json:"startDate"`
	EndDate     *Date   `json:"endDate"`
	IsActive    bool    `json:"isActive"`
}

// TourFilter holds the optional criteria of a tour listing.
type TourFilter struct {
	// Query is matched case-insensitively against title and location.
	Query string
	// StartFrom keeps tours starting on or after the date.
	StartFrom *Date
	// EndBy keeps tours ending on or before the date.
	EndBy *Date
	// Guests keeps tours whose numeric group size can hold that many people.
	Guests *int
	// FeaturedOnly restricts the listing to featured tours.
	FeaturedOnly bool
	// Privileged lists inactive tours as well. Only set for verified sessions.
	Privileged bool
}
