// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/travel-agency/internal/validators"
	"github.com/MKhiriev/travel-agency/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

// wireFields marshals v and returns it as a generic JSON object.
func wireFields(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// assertRoundTrip checks that every field of body survives decode and encode.
func assertRoundTrip(t *testing.T, body string, view any) {
	t.Helper()
	in := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	out := wireFields(t, view)
	for k, v := range in {
		assert.Equal(t, v, out[k], "field %s", k)
	}
}

// ---------------------------------------------------------------------------
// Tour
// ---------------------------------------------------------------------------

func TestTour_RoundTrip(t *testing.T) {
	body := `{"title":"Rome Tour","description":"Colosseum","price":199.99,"duration":"3 days",
		"groupSize":"12","rating":4.5,"reviews":10,"image":"rome.jpg","location":"Rome, Italy",
		"region":"europe","featured":true,"isActive":false,"startDate":"2026-05-01","endDate":"2026-05-04"}`

	rec, err := DecodeTourCreate(decode[models.TourPayload](t, body))
	require.NoError(t, err)
	require.NotNil(t, rec.StartDate)
	assert.Equal(t, "2026-05-01", rec.StartDate.String())
	assert.Equal(t, "rome.jpg", rec.ImageURL)
	assert.False(t, rec.Active)

	assertRoundTrip(t, body, EncodeTour(rec))
}

func TestTour_NumericGroupSize(t *testing.T) {
	rec, err := DecodeTourCreate(decode[models.TourPayload](t, `{"title":"x","price":1,"groupSize":8}`))
	require.NoError(t, err)
	assert.Equal(t, "8", rec.GroupSize)
}

func TestDecodeTourPatch(t *testing.T) {
	t.Run("only present fields", func(t *testing.T) {
		changes, err := DecodeTourPatch(decode[models.TourPayload](t, `{"price":199.99}`))
		require.NoError(t, err)
		assert.Equal(t, models.Changes{"price": 199.99}, changes)
	})

	t.Run("renames", func(t *testing.T) {
		changes, err := DecodeTourPatch(decode[models.TourPayload](t, `{"image":"a.jpg","featured":true,"isActive":false,"reviews":3,"groupSize":4}`))
		require.NoError(t, err)
		assert.Equal(t, models.Changes{
			"image_url":     "a.jpg",
			"is_featured":   true,
			"is_active":     false,
			"reviews_count": 3,
			"group_size":    "4",
		}, changes)
	})

	t.Run("null clears date", func(t *testing.T) {
		changes, err := DecodeTourPatch(decode[models.TourPayload](t, `{"startDate":null,"endDate":"2026-01-02"}`))
		require.NoError(t, err)
		require.Contains(t, changes, "start_date")
		assert.Nil(t, changes["start_date"])
		assert.Equal(t, models.NewDate(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)), changes["end_date"])
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := DecodeTourPatch(decode[models.TourPayload](t, `{"startDate":"soon"}`))
		require.ErrorIs(t, err, validators.ErrInvalidInput)
	})

	t.Run("empty patch", func(t *testing.T) {
		changes, err := DecodeTourPatch(models.TourPayload{})
		require.NoError(t, err)
		assert.Empty(t, changes)
	})
}

func TestEncodeTour_NullDates(t *testing.T) {
	out := wireFields(t, EncodeTour(models.Tour{ID: 1, Title: "x"}))
	assert.Nil(t, out["startDate"])
	assert.Contains(t, out, "endDate")
}

// ---------------------------------------------------------------------------
// Car
// ---------------------------------------------------------------------------

func TestCar_RoundTrip(t *testing.T) {
	body := `{"brand":"Toyota","model":"Corolla","category":"Economy","price":40,"seats":5,
		"transmission":"Automatic","image":"c.jpg","features":["GPS","AC"],"isReserved":true,"isActive":true}`

	rec, err := DecodeCarCreate(decode[models.CarPayload](t, body))
	require.NoError(t, err)

	view := EncodeCar(rec)
	assert.Equal(t, "Toyota Corolla", view.Name)
	assertRoundTrip(t, body, view)
}

func TestCar_Decode(t *testing.T) {
	t.Run("name split on first space", func(t *testing.T) {
		rec, err := DecodeCarCreate(decode[models.CarPayload](t, `{"name":"Land Rover Defender","price":90}`))
		require.NoError(t, err)
		assert.Equal(t, "Land", rec.Brand)
		assert.Equal(t, "Rover Defender", rec.Model)
	})

	t.Run("comma separated features", func(t *testing.T) {
		rec, err := DecodeCarCreate(decode[models.CarPayload](t, `{"name":"Fiat Panda","features":" GPS, ,AC "}`))
		require.NoError(t, err)
		assert.Equal(t, models.StringList{"GPS", "AC"}, rec.Features)
	})

	t.Run("patch by name", func(t *testing.T) {
		changes, err := DecodeCarPatch(decode[models.CarPayload](t, `{"name":"Fiat Panda","price":25}`))
		require.NoError(t, err)
		assert.Equal(t, models.Changes{"brand": "Fiat", "model": "Panda", "price_per_day": 25.0}, changes)
	})

	t.Run("explicit brand wins over name", func(t *testing.T) {
		changes, err := DecodeCarPatch(decode[models.CarPayload](t, `{"name":"Fiat Panda","brand":"FIAT"}`))
		require.NoError(t, err)
		assert.Equal(t, "FIAT", changes["brand"])
	})
}

func TestEncodeCar_EmptyFeaturesNeverNull(t *testing.T) {
	out := wireFields(t, EncodeCar(models.Car{Brand: "Fiat"}))
	assert.Equal(t, []any{}, out["features"])
	assert.Equal(t, "Fiat", out["name"])
}

// ---------------------------------------------------------------------------
// Insurance
// ---------------------------------------------------------------------------

func TestInsurance_RoundTrip(t *testing.T) {
	body := `{"name":"Premium","price":7.5,"description":"All risks","image":"i.png","features":"a|b","featured":true}`

	rec, err := DecodeInsuranceCreate(decode[models.InsurancePayload](t, body))
	require.NoError(t, err)
	assert.Equal(t, 7.5, rec.PriceDaily)
	assertRoundTrip(t, body, EncodeInsurance(rec))
}

// ---------------------------------------------------------------------------
// Review
// ---------------------------------------------------------------------------

func TestReview_RoundTrip(t *testing.T) {
	body := `{"nickname":"ann","city":"Paris","country":"France","rating":4,"text":"lovely","tourId":3,"isActive":true}`

	rec, err := DecodeReviewCreate(decode[models.ReviewPayload](t, body))
	require.NoError(t, err)

	view := EncodeReview(rec)
	assert.Equal(t, "Paris, France", view.Location)
	assertRoundTrip(t, body, view)
}

func TestReview_Aliases(t *testing.T) {
	rec, err := DecodeReviewCreate(decode[models.ReviewPayload](t, `{"username":"bob","comment":"fine","rating":3}`))
	require.NoError(t, err)
	assert.Equal(t, "bob", rec.Nickname)
	assert.Equal(t, "fine", rec.Comment)
	assert.Nil(t, rec.TourID)
}

func TestReview_Location(t *testing.T) {
	assert.Equal(t, "Oslo", EncodeReview(models.Review{City: "Oslo"}).Location)
	assert.Equal(t, "", EncodeReview(models.Review{Country: "Norway"}).Location)
}

func TestDecodeReviewPatch_ClearTour(t *testing.T) {
	changes, err := DecodeReviewPatch(decode[models.ReviewPayload](t, `{"tourId":null,"comment":"edited"}`))
	require.NoError(t, err)
	require.Contains(t, changes, "tour_id")
	assert.Nil(t, changes["tour_id"])
	assert.Equal(t, "edited", changes["comment"])
}

// ---------------------------------------------------------------------------
// Newsletter
// ---------------------------------------------------------------------------

func TestSubscriber_RoundTrip(t *testing.T) {
	body := `{"email":"a@b.com","firstName":"Ann","lastName":"Lee","interests":["beach","ski"]}`

	rec, err := DecodeSubscriptionCreate(decode[models.SubscriptionPayload](t, body))
	require.NoError(t, err)
	assertRoundTrip(t, body, EncodeSubscriber(rec))
}

func TestSubscriber_Normalizes(t *testing.T) {
	rec, err := DecodeSubscriptionCreate(decode[models.SubscriptionPayload](t, `{"email":" A@B.com "}`))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", rec.Email)

	out := wireFields(t, EncodeSubscriber(models.Subscriber{Email: "a@b.com"}))
	assert.Equal(t, []any{}, out["interests"])
}

// ---------------------------------------------------------------------------
// Inquiry
// ---------------------------------------------------------------------------

func TestInquiry_Decode(t *testing.T) {
	p := validators.WithInquiryDefaults(decode[models.InquiryPayload](t, `{"email":"a@b.com","type":"car","id":12,"itemTitle":"Fiat Panda"}`))

	rec, err := DecodeInquiryCreate(p)
	require.NoError(t, err)
	assert.Equal(t, models.Inquiry{
		Email:     "a@b.com",
		ItemType:  "car",
		ItemID:    "12",
		ItemTitle: "Fiat Panda",
		Status:    "new",
	}, rec)
}

func TestEncodeInquiry_CreatedAtLayout(t *testing.T) {
	view := EncodeInquiry(models.Inquiry{CreatedAt: time.Date(2026, 3, 9, 14, 5, 59, 0, time.UTC)})
	assert.Equal(t, "2026-03-09 14:05", view.CreatedAt)
}

func TestDecodeInquiryStatus(t *testing.T) {
	changes, err := DecodeInquiryStatus(models.InquiryStatusPayload{Status: models.Some("closed")})
	require.NoError(t, err)
	assert.Equal(t, models.Changes{"status": "closed"}, changes)
}

// ---------------------------------------------------------------------------
// EncodeAll
// ---------------------------------------------------------------------------

func TestEncodeAll_NeverNil(t *testing.T) {
	views := EncodeAll(nil, EncodeTour)
	require.NotNil(t, views)
	assert.Empty(t, views)
}
