// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/MKhiriev/travel-agency/models"

// Documented defaults of create calls.
const (
	DefaultTourDuration  = "1 day"
	DefaultTourGroupSize = "Any"
	DefaultTourRegion    = "europe"

	DefaultCarTransmission = "Manual"
	DefaultCarSeats        = 5

	DefaultInquiryItemType = "unknown"
	DefaultInquiryItemID   = "0"
	DefaultInquiryStatus   = "new"
)

func orDefault[T any](o models.Optional[T], def T) models.Optional[T] {
	if o.HasValue() {
		return o
	}
	return models.Some(def)
}

// WithTourDefaults fills every absent field of a tour create payload.
func WithTourDefaults(p models.TourPayload) models.TourPayload {
	p.Description = orDefault(p.Description, "")
	p.Duration = orDefault(p.Duration, DefaultTourDuration)
	p.GroupSize = orDefault(p.GroupSize, models.FlexString(DefaultTourGroupSize))
	p.Rating = orDefault(p.Rating, 0)
	p.Reviews = orDefault(p.Reviews, 0)
	p.Image = orDefault(p.Image, "")
	p.Location = orDefault(p.Location, "")
	p.Region = orDefault(p.Region, DefaultTourRegion)
	p.Featured = orDefault(p.Featured, false)
	p.IsActive = orDefault(p.IsActive, true)
	return p
}

func WithCarDefaults(p models.CarPayload) models.CarPayload {
	p.Category = orDefault(p.Category, "")
	p.Seats = orDefault(p.Seats, DefaultCarSeats)
	p.Transmission = orDefault(p.Transmission, DefaultCarTransmission)
	p.Image = orDefault(p.Image, "")
	p.Features = orDefault(p.Features, models.StringList{})
	p.IsReserved = orDefault(p.IsReserved, false)
	p.IsActive = orDefault(p.IsActive, true)
	return p
}

func WithInsuranceDefaults(p models.InsurancePayload) models.InsurancePayload {
	p.Description = orDefault(p.Description, "")
	p.Image = orDefault(p.Image, "")
	p.Features = orDefault(p.Features, "")
	p.Featured = orDefault(p.Featured, false)
	return p
}

func WithReviewDefaults(p models.ReviewPayload) models.ReviewPayload {
	p.City = orDefault(p.City, "")
	p.Country = orDefault(p.Country, "")
	p.IsActive = orDefault(p.IsActive, true)
	return p
}

func WithSubscriptionDefaults(p models.SubscriptionPayload) models.SubscriptionPayload {
	p.FirstName = orDefault(p.FirstName, "")
	p.LastName = orDefault(p.LastName, "")
	p.Interests = orDefault(p.Interests, models.StringList{})
	return p
}

// WithInquiryDefaults fills the item reference and resets the status:
// a new inquiry always starts as "new" whatever the client sent.
func WithInquiryDefaults(p models.InquiryPayload) models.InquiryPayload {
	p.ItemType = orDefault(p.Kind(), DefaultInquiryItemType)
	p.ItemID = orDefault(p.Item(), models.FlexString(DefaultInquiryItemID))
	p.Type = models.Optional[string]{}
	p.ID = models.Optional[models.FlexString]{}
	p.Status = models.Some(DefaultInquiryStatus)
	return p
}
