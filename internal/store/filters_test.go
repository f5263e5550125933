// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/travel-agency/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toSQL renders lq the way Gateway.FindAll does, with Postgres placeholders.
func toSQL(t *testing.T, table string, lq ListQuery) (string, []any) {
	t.Helper()

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("id").From(table)
	if lq.Where != nil {
		builder = builder.Where(lq.Where)
	}
	if len(lq.OrderBy) > 0 {
		builder = builder.OrderBy(lq.OrderBy...)
	}
	if lq.Limit > 0 {
		builder = builder.Limit(lq.Limit)
	}

	query, args, err := builder.ToSql()
	require.NoError(t, err)
	return query, args
}

func Test_tourListQuery(t *testing.T) {
	start := models.NewDate(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	end := models.NewDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name       string
		filter     models.TourFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "public listing shows active tours only",
			filter: models.TourFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "is_active = $1")
				require.Equal(t, []any{true}, args)
				require.Contains(t, query, "ORDER BY start_date IS NULL, start_date ASC, id ASC")
			},
		},
		{
			name:   "privileged listing has no predicate",
			filter: models.TourFilter{Privileged: true},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.NotContains(t, query, "WHERE")
				require.Empty(t, args)
			},
		},
		{
			name:   "text query matches title or location case-insensitively",
			filter: models.TourFilter{Query: " Rome ", Privileged: true},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, `LOWER(title) LIKE $1 ESCAPE '\' OR LOWER(location) LIKE $2 ESCAPE '\'`)
				require.Equal(t, []any{"%rome%", "%rome%"}, args)
			},
		},
		{
			name:   "wildcards in the text query match literally",
			filter: models.TourFilter{Query: "100%_off", Privileged: true},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Equal(t, []any{`%100\%\_off%`, `%100\%\_off%`}, args)
			},
		},
		{
			name:   "date range",
			filter: models.TourFilter{StartFrom: &start, EndBy: &end, Privileged: true},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "start_date >= $1")
				require.Contains(t, query, "end_date <= $2")
				// squirrel passes dates through their driver.Valuer
				require.Equal(t, []any{start.Time, end.Time}, args)
			},
		},
		{
			name:   "featured only",
			filter: models.TourFilter{FeaturedOnly: true},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "is_active = $1")
				require.Contains(t, query, "is_featured = $2")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := toSQL(t, "tours", tourListQuery(tt.filter))
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, "rome", escapeLike("rome"))
	assert.Equal(t, `\%`, escapeLike("%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`))
}

func Test_tourFitsGuests(t *testing.T) {
	assert.Nil(t, tourFitsGuests(models.TourFilter{}))

	guests := 6
	keep := tourFitsGuests(models.TourFilter{Guests: &guests})
	require.NotNil(t, keep)

	assert.True(t, keep(models.Tour{GroupSize: "12"}))
	assert.True(t, keep(models.Tour{GroupSize: " 6 "}))
	assert.False(t, keep(models.Tour{GroupSize: "4"}))
	assert.True(t, keep(models.Tour{GroupSize: "Any"}), "non-numeric group size is kept")
	assert.True(t, keep(models.Tour{GroupSize: "2-8"}), "non-numeric group size is kept")
}

func Test_carListQuery(t *testing.T) {
	t.Run("public listing hides inactive and reserved cars", func(t *testing.T) {
		query, args := toSQL(t, "cars", carListQuery(models.CarFilter{}))
		require.Contains(t, query, "is_active = $1")
		require.Contains(t, query, "is_reserved = $2")
		require.Equal(t, []any{true, false}, args)
		require.True(t, strings.HasSuffix(query, "ORDER BY price_per_day ASC, id ASC"))
	})

	t.Run("category is matched exactly", func(t *testing.T) {
		query, args := toSQL(t, "cars", carListQuery(models.CarFilter{Category: "SUV", Privileged: true}))
		require.Contains(t, query, "category = $1")
		require.Equal(t, []any{"SUV"}, args)
	})
}

func Test_reviewListQuery(t *testing.T) {
	t.Run("public listing is capped", func(t *testing.T) {
		query, args := toSQL(t, "reviews", reviewListQuery(models.ReviewFilter{}))
		require.Contains(t, query, "is_active = $1")
		require.Contains(t, query, "ORDER BY created_at DESC, id DESC")
		require.Contains(t, query, "LIMIT 3")
		require.Equal(t, []any{true}, args)
	})

	t.Run("privileged listing by tour", func(t *testing.T) {
		tourID := int64(4)
		query, args := toSQL(t, "reviews", reviewListQuery(models.ReviewFilter{TourID: &tourID, Privileged: true}))
		require.Contains(t, query, "tour_id = $1")
		require.NotContains(t, query, "LIMIT")
		require.NotContains(t, query, "is_active")
		require.Equal(t, []any{int64(4)}, args)
	})
}

func Test_otherListQueries(t *testing.T) {
	query, args := toSQL(t, "insurances", insuranceListQuery(models.InsuranceFilter{FeaturedOnly: true}))
	assert.Contains(t, query, "is_featured = $1")
	assert.Equal(t, []any{true}, args)

	query, _ = toSQL(t, "insurances", insuranceListQuery(models.InsuranceFilter{}))
	assert.NotContains(t, query, "WHERE")

	query, _ = toSQL(t, "inquiries", inquiryListQuery(models.NoFilter{}))
	assert.Contains(t, query, "ORDER BY created_at DESC")

	query, _ = toSQL(t, "newsletter", subscriberListQuery(models.NoFilter{}))
	assert.Contains(t, query, "ORDER BY id ASC")
}
