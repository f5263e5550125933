// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "github.com/MKhiriev/travel-agency/models"

// DecodeReviewCreate builds a new review, accepting the field aliases.
func DecodeReviewCreate(p models.ReviewPayload) (models.Review, error) {
	r := models.Review{
		Nickname: p.Author().OrElse(""),
		City:     p.City.OrElse(""),
		Country:  p.Country.OrElse(""),
		Rating:   p.Rating.OrElse(0),
		Comment:  p.Body().OrElse(""),
		Active:   p.IsActive.OrElse(true),
	}
	if tourID, ok := p.TourID.Value(); ok {
		r.TourID = &tourID
	}
	return r, nil
}

// DecodeReviewPatch maps an explicit null tourId to a general review.
func DecodeReviewPatch(p models.ReviewPayload) (models.Changes, error) {
	changes := models.Changes{}
	set(changes, "nickname", p.Author())
	set(changes, "city", p.City)
	set(changes, "country", p.Country)
	set(changes, "rating", p.Rating)
	set(changes, "comment", p.Body())
	set(changes, "is_active", p.IsActive)
	if p.TourID.IsNull() {
		changes["tour_id"] = nil
	} else {
		set(changes, "tour_id", p.TourID)
	}
	return changes, nil
}

// EncodeReview renders a review for the API.
func EncodeReview(r models.Review) models.ReviewView {
	return models.ReviewView{
		ID:       r.ID,
		Nickname: r.Nickname,
		Location: reviewLocation(r.City, r.Country),
		City:     r.City,
		Country:  r.Country,
		Rating:   r.Rating,
		Text:     r.Comment,
		Date:     r.CreatedAt.UTC(),
		TourID:   r.TourID,
		IsActive: r.Active,
	}
}

func reviewLocation(city, country string) string {
	if city != "" && country != "" {
		return city + ", " + country
	}
	return city
}
