// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Review is the stored representation of a customer review.
// TourID is nil for general reviews of the agency.
type Review struct {
	ID        int64
	Nickname  string
	City      string
	Country   string
	Rating    int
	Comment   string
	Active    bool
	CreatedAt time.Time
	TourID    *int64
}

// TableName returns the name of the database table associated with Review.
func (Review) TableName() string {
	return "reviews"
}

// ReviewPayload is the request body of review create and update calls.
// Username is an alias of Nickname and Comment an alias of Text; the
// canonical name wins when both are sent.
type ReviewPayload struct {
	Nickname Optional[string] `json:"nickname,omitzero"`
	Username Optional[string] `json:"username,omitzero"`
	City     Optional[string] `json:"city,omitzero"`
	Country  Optional[string] `json:"country,omitzero"`
	Rating   Optional[int]    `json:"rating,omitzero"`
	Text     Optional[string] `json:"text,omitzero"`
	Comment  Optional[string] `json:"comment,omitzero"`
	TourID   Optional[int64]  `json:"tourId,omitzero"`
	IsActive Optional[bool]   `json:"isActive,omitzero"`
}

func (p ReviewPayload) Fields() []string {
	return presentFields(map[string]bool{
		"nickname": p.Nickname.Present(),
		"username": p.Username.Present(),
		"city":     p.City.Present(),
		"country":  p.Country.Present(),
		"rating":   p.Rating.Present(),
		"text":     p.Text.Present(),
		"comment":  p.Comment.Present(),
		"tourId":   p.TourID.Present(),
		"isActive": p.IsActive.Present(),
	})
}

// Author returns the nickname, falling back to the username alias.
func (p ReviewPayload) Author() Optional[string] {
	if p.Nickname.Present() {
		return p.Nickname
	}
	return p.Username
}

// Body returns the review text, falling back to the comment alias.
func (p ReviewPayload) Body() Optional[string] {
	if p.Text.Present() {
		return p.Text
	}
	return p.Comment
}

// ReviewView is the wire representation of a review.
type ReviewView struct {
	ID       int64     `json:"id"`
	Nickname string    `json:"nickname"`
	Location string    `json:"location"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
	Rating   int       `json:"rating"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
	TourID   *int64    `json:"tourId"`
	IsActive bool      `json:"isActive"`
}

// ReviewFilter holds the optional criteria of a review listing.
type ReviewFilter struct {
	TourID *int64
	// Privileged lists inactive reviews as well and lifts the public cap.
	Privileged bool
}
