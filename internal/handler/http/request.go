// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/travel-agency/models"
	"github.com/go-chi/chi/v5"
)

// idParam parses the {id} path segment.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidID, chi.URLParam(r, "id"))
	}
	return id, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// Query parameters are best effort: malformed values are ignored.

func queryDate(values url.Values, key string) *models.Date {
	d, err := models.ParseDate(values.Get(key))
	if err != nil {
		return nil
	}
	return &d
}

func queryInt(values url.Values, key string) *int {
	n, err := strconv.Atoi(values.Get(key))
	if err != nil {
		return nil
	}
	return &n
}

func queryID(values url.Values, keys ...string) *int64 {
	for _, key := range keys {
		if id, err := strconv.ParseInt(values.Get(key), 10, 64); err == nil {
			return &id
		}
	}
	return nil
}

func queryBool(values url.Values, key string) bool {
	return values.Get(key) == "true"
}

func tourFilter(r *http.Request) models.TourFilter {
	values := r.URL.Query()
	return models.TourFilter{
		Query:        strings.TrimSpace(values.Get("q")),
		StartFrom:    queryDate(values, "startDate"),
		EndBy:        queryDate(values, "endDate"),
		Guests:       queryInt(values, "guests"),
		FeaturedOnly: queryBool(values, "featured"),
		Privileged:   privileged(r),
	}
}

func carFilter(r *http.Request) models.CarFilter {
	return models.CarFilter{
		Category:   strings.TrimSpace(r.URL.Query().Get("category")),
		Privileged: privileged(r),
	}
}

func insuranceFilter(r *http.Request) models.InsuranceFilter {
	return models.InsuranceFilter{
		FeaturedOnly: queryBool(r.URL.Query(), "featured"),
	}
}

func reviewFilter(r *http.Request) models.ReviewFilter {
	return models.ReviewFilter{
		TourID:     queryID(r.URL.Query(), "tourId", "tour_id"),
		Privileged: privileged(r),
	}
}

func noFilter(*http.Request) models.NoFilter {
	return models.NoFilter{}
}
