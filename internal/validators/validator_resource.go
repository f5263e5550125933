// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/travel-agency/models"
)

// ResourceValidator implements the Validator interface for every request
// payload of the public API. Both value and pointer forms are accepted.
type ResourceValidator struct {
}

// NewResourceValidator constructs a new ResourceValidator
// and returns it as the Validator interface.
func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

// Validate dispatches validation to the rule set of obj's dynamic type.
// Returns ErrUnsupportedType if obj is not a known payload.
func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TourPayload:
		return tourRules(value).validate(fields)
	case *models.TourPayload:
		return tourRules(*value).validate(fields)

	case models.CarPayload:
		return carRules(value).validate(fields)
	case *models.CarPayload:
		return carRules(*value).validate(fields)

	case models.InsurancePayload:
		return insuranceRules(value).validate(fields)
	case *models.InsurancePayload:
		return insuranceRules(*value).validate(fields)

	case models.ReviewPayload:
		return reviewRules(value).validate(fields)
	case *models.ReviewPayload:
		return reviewRules(*value).validate(fields)

	case models.SubscriptionPayload:
		return subscriptionRules(value).validate(fields)
	case *models.SubscriptionPayload:
		return subscriptionRules(*value).validate(fields)

	case models.InquiryPayload:
		return inquiryRules(value).validate(fields)
	case *models.InquiryPayload:
		return inquiryRules(*value).validate(fields)

	case models.InquiryStatusPayload:
		return inquiryStatusRules(value).validate(fields)
	case *models.InquiryStatusPayload:
		return inquiryStatusRules(*value).validate(fields)

	case models.Credentials:
		return validateCredentials(value)
	case *models.Credentials:
		return validateCredentials(*value)

	default:
		return ErrUnsupportedType
	}
}

func tourRules(p models.TourPayload) ruleSet {
	return ruleSet{
		rules: map[string]rule{
			"title":       text("title", p.Title),
			"description": notNull("description", p.Description),
			"price":       atLeast("price", p.Price, 0),
			"duration":    notNull("duration", p.Duration),
			"groupSize":   notNull("groupSize", p.GroupSize),
			"rating":      between("rating", p.Rating, 0, 5),
			"reviews":     atLeast("reviews", p.Reviews, 0),
			"image":       notNull("image", p.Image),
			"location":    notNull("location", p.Location),
			"region":      notNull("region", p.Region),
			"featured":    notNull("featured", p.Featured),
			"isActive":    notNull("isActive", p.IsActive),
			"startDate":   date("startDate", p.StartDate),
			"endDate":     date("endDate", p.EndDate),
		},
		require: func() error {
			return requireAll(
				required("title", p.Title),
				required("price", p.Price),
			)
		},
	}
}

func carRules(p models.CarPayload) ruleSet {
	return ruleSet{
		rules: map[string]rule{
			"name":         text("name", p.Name),
			"brand":        text("brand", p.Brand),
			"model":        text("model", p.Model),
			"category":     notNull("category", p.Category),
			"price":        atLeast("price", p.Price, 0),
			"seats":        atLeast("seats", p.Seats, 1),
			"transmission": text("transmission", p.Transmission),
			"image":        notNull("image", p.Image),
			"features":     notNull("features", p.Features),
			"isReserved":   notNull("isReserved", p.IsReserved),
			"isActive":     notNull("isActive", p.IsActive),
		},
		require: func() error {
			if !p.Name.HasValue() {
				if err := requireAll(
					required("brand", p.Brand),
					required("model", p.Model),
				); err != nil {
					return err
				}
			}
			return required("price", p.Price)
		},
	}
}

func insuranceRules(p models.InsurancePayload) ruleSet {
	return ruleSet{
		rules: map[string]rule{
			"name":        text("name", p.Name),
			"price":       atLeast("price", p.Price, 0),
			"description": notNull("description", p.Description),
			"image":       notNull("image", p.Image),
			"features":    notNull("features", p.Features),
			"featured":    notNull("featured", p.Featured),
		},
		require: func() error {
			return requireAll(
				required("name", p.Name),
				required("price", p.Price),
			)
		},
	}
}

func reviewRules(p models.ReviewPayload) ruleSet {
	return ruleSet{
		rules: map[string]rule{
			"nickname": text("nickname", p.Nickname),
			"username": text("username", p.Username),
			"city":     notNull("city", p.City),
			"country":  notNull("country", p.Country),
			"rating":   between("rating", p.Rating, 1, 5),
			"text":     text("text", p.Text),
			"comment":  text("comment", p.Comment),
			"tourId":   reference("tourId", p.TourID),
			"isActive": notNull("isActive", p.IsActive),
		},
		require: func() error {
			return requireAll(
				required("nickname", p.Author()),
				required("text", p.Body()),
				required("rating", p.Rating),
			)
		},
	}
}

func subscriptionRules(p models.SubscriptionPayload) ruleSet {
	return ruleSet{
		rules: map[string]rule{
			"email":     email("email", p.Email),
			"firstName": notNull("firstName", p.FirstName),
			"lastName":  notNull("lastName", p.LastName),
			"interests": notNull("interests", p.Interests),
		},
		require: func() error {
			return required("email", p.Email)
		},
	}
}

func inquiryRules(p models.InquiryPayload) ruleSet {
	return ruleSet{
		rules: map[string]rule{
			"email":     email("email", p.Email),
			"itemType":  notNull("itemType", p.ItemType),
			"type":      notNull("type", p.Type),
			"itemId":    notNull("itemId", p.ItemID),
			"id":        notNull("id", p.ID),
			"itemTitle": text("itemTitle", p.ItemTitle),
			"status":    text("status", p.Status),
		},
		require: func() error {
			return requireAll(
				required("email", p.Email),
				required("itemTitle", p.ItemTitle),
			)
		},
	}
}

func inquiryStatusRules(p models.InquiryStatusPayload) ruleSet {
	return ruleSet{
		rules: map[string]rule{
			"status": text("status", p.Status),
		},
		require: func() error {
			return required("status", p.Status)
		},
	}
}

func validateCredentials(c models.Credentials) error {
	if strings.TrimSpace(c.Username) == "" {
		return fieldError("username", "is required")
	}
	if c.Password == "" {
		return fieldError("password", "is required")
	}
	return nil
}

// email only checks the shape the booking forms already enforce client side.
func email(field string, o models.Optional[string]) rule {
	return func() error {
		if err := text(field, o)(); err != nil {
			return err
		}
		v, ok := o.Value()
		if ok && !strings.Contains(v, "@") {
			return fieldError(field, "must be an email address")
		}
		return nil
	}
}
