// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "github.com/MKhiriev/travel-agency/models"

// DecodeTourCreate builds a new tour from the payload.
func DecodeTourCreate(p models.TourPayload) (models.Tour, error) {
	start, err := decodeDate("startDate", p.StartDate)
	if err != nil {
		return models.Tour{}, err
	}
	end, err := decodeDate("endDate", p.EndDate)
	if err != nil {
		return models.Tour{}, err
	}

	return models.Tour{
		Title:        p.Title.OrElse(""),
		Description:  p.Description.OrElse(""),
		Price:        p.Price.OrElse(0),
		Duration:     p.Duration.OrElse(""),
		GroupSize:    p.GroupSize.OrElse("").String(),
		Rating:       p.Rating.OrElse(0),
		ReviewsCount: p.Reviews.OrElse(0),
		ImageURL:     p.Image.OrElse(""),
		Location:     p.Location.OrElse(""),
		Region:       p.Region.OrElse(""),
		Featured:     p.Featured.OrElse(false),
		Active:       p.IsActive.OrElse(true),
		StartDate:    start,
		EndDate:      end,
	}, nil
}

// DecodeTourPatch maps the present payload fields to column changes.
func DecodeTourPatch(p models.TourPayload) (models.Changes, error) {
	changes := models.Changes{}
	set(changes, "title", p.Title)
	set(changes, "description", p.Description)
	set(changes, "price", p.Price)
	set(changes, "duration", p.Duration)
	if v, ok := p.GroupSize.Value(); ok {
		changes["group_size"] = v.String()
	}
	set(changes, "rating", p.Rating)
	set(changes, "reviews_count", p.Reviews)
	set(changes, "image_url", p.Image)
	set(changes, "location", p.Location)
	set(changes, "region", p.Region)
	set(changes, "is_featured", p.Featured)
	set(changes, "is_active", p.IsActive)
	if err := setDate(changes, "start_date", "startDate", p.StartDate); err != nil {
		return nil, err
	}
	if err := setDate(changes, "end_date", "endDate", p.EndDate); err != nil {
		return nil, err
	}
	return changes, nil
}

// EncodeTour renders a tour for the API.
func EncodeTour(t models.Tour) models.TourView {
	return models.TourView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Price:       t.Price,
		Duration:    t.Duration,
		GroupSize:   t.GroupSize,
		Rating:      t.Rating,
		Reviews:     t.ReviewsCount,
		Image:       t.ImageURL,
		Location:    t.Location,
		Region:      t.Region,
		Featured:    t.Featured,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		IsActive:    t.Active,
	}
}
