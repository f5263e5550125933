// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/travel-agency/models"
	sq "github.com/Masterminds/squirrel"
)

// PublicReviewLimit caps the public review listing.
const PublicReviewLimit = 3

// where joins conditions with AND, or returns nil when there are none.
func where(conditions sq.And) sq.Sqlizer {
	if len(conditions) == 0 {
		return nil
	}
	return conditions
}

func tourListQuery(f models.TourFilter) ListQuery {
	conditions := sq.And{}

	if !f.Privileged {
		conditions = append(conditions, sq.Eq{"is_active": true})
	}
	if f.FeaturedOnly {
		conditions = append(conditions, sq.Eq{"is_featured": true})
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		conditions = append(conditions, sq.Or{
			sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(location) LIKE ? ESCAPE '\'`, pattern),
		})
	}
	if f.StartFrom != nil {
		conditions = append(conditions, sq.GtOrEq{"start_date": *f.StartFrom})
	}
	if f.EndBy != nil {
		conditions = append(conditions, sq.LtOrEq{"end_date": *f.EndBy})
	}

	return ListQuery{
		Where: where(conditions),
		// tours without a start date go last
		OrderBy: []string{"start_date IS NULL", "start_date ASC", "id ASC"},
	}
}

// likeEscaper makes % and _ match literally in a LIKE ... ESCAPE '\' pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// tourFitsGuests keeps a tour when its group size holds the requested number
// of guests. Group sizes that are not integers ("Any", "2-8") never exclude a tour.
func tourFitsGuests(f models.TourFilter) func(models.Tour) bool {
	if f.Guests == nil {
		return nil
	}
	guests := *f.Guests
	return func(t models.Tour) bool {
		size, err := strconv.Atoi(strings.TrimSpace(t.GroupSize))
		if err != nil {
			return true
		}
		return size >= guests
	}
}

func carListQuery(f models.CarFilter) ListQuery {
	conditions := sq.And{}

	if !f.Privileged {
		conditions = append(conditions, sq.Eq{"is_active": true}, sq.Eq{"is_reserved": false})
	}
	if f.Category != "" {
		conditions = append(conditions, sq.Eq{"category": f.Category})
	}

	return ListQuery{
		Where:   where(conditions),
		OrderBy: []string{"price_per_day ASC", "id ASC"},
	}
}

func insuranceListQuery(f models.InsuranceFilter) ListQuery {
	conditions := sq.And{}

	if f.FeaturedOnly {
		conditions = append(conditions, sq.Eq{"is_featured": true})
	}

	return ListQuery{
		Where:   where(conditions),
		OrderBy: []string{"id ASC"},
	}
}

func reviewListQuery(f models.ReviewFilter) ListQuery {
	conditions := sq.And{}

	if !f.Privileged {
		conditions = append(conditions, sq.Eq{"is_active": true})
	}
	if f.TourID != nil {
		conditions = append(conditions, sq.Eq{"tour_id": *f.TourID})
	}

	lq := ListQuery{
		Where:   where(conditions),
		OrderBy: []string{"created_at DESC", "id DESC"},
	}
	if !f.Privileged {
		lq.Limit = PublicReviewLimit
	}
	return lq
}

func subscriberListQuery(models.NoFilter) ListQuery {
	return ListQuery{OrderBy: []string{"id ASC"}}
}

func inquiryListQuery(models.NoFilter) ListQuery {
	return ListQuery{OrderBy: []string{"created_at DESC", "id DESC"}}
}
