// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/travel-agency/models"

var tourTable = Table[models.Tour]{
	Name: models.Tour{}.TableName(),
	Columns: []string{
		"id", "title", "description", "price", "duration", "group_size", "rating", "reviews_count",
		"image_url", "location", "region", "is_featured", "is_active", "start_date", "end_date", "created_at",
	},
	InsertColumns: []string{
		"title", "description", "price", "duration", "group_size", "rating", "reviews_count",
		"image_url", "location", "region", "is_featured", "is_active", "start_date", "end_date",
	},
	Values: func(t models.Tour) []any {
		return []any{
			t.Title, t.Description, t.Price, t.Duration, t.GroupSize, t.Rating, t.ReviewsCount,
			t.ImageURL, t.Location, t.Region, t.Featured, t.Active, t.StartDate, t.EndDate,
		}
	},
	Scan: func(row RowScanner) (models.Tour, error) {
		var t models.Tour
		err := row.Scan(
			&t.ID, &t.Title, &t.Description, &t.Price, &t.Duration, &t.GroupSize, &t.Rating, &t.ReviewsCount,
			&t.ImageURL, &t.Location, &t.Region, &t.Featured, &t.Active, &t.StartDate, &t.EndDate, &t.CreatedAt,
		)
		return t, err
	},
}

var carTable = Table[models.Car]{
	Name: models.Car{}.TableName(),
	Columns: []string{
		"id", "brand", "model", "category", "price_per_day", "seats", "transmission",
		"image_url", "features", "is_reserved", "is_active",
	},
	InsertColumns: []string{
		"brand", "model", "category", "price_per_day", "seats", "transmission",
		"image_url", "features", "is_reserved", "is_active",
	},
	Values: func(c models.Car) []any {
		return []any{
			c.Brand, c.Model, c.Category, c.PricePerDay, c.Seats, c.Transmission,
			c.ImageURL, c.Features, c.Reserved, c.Active,
		}
	},
	Scan: func(row RowScanner) (models.Car, error) {
		var c models.Car
		err := row.Scan(
			&c.ID, &c.Brand, &c.Model, &c.Category, &c.PricePerDay, &c.Seats, &c.Transmission,
			&c.ImageURL, &c.Features, &c.Reserved, &c.Active,
		)
		return c, err
	},
}

var insuranceTable = Table[models.Insurance]{
	Name:          models.Insurance{}.TableName(),
	Columns:       []string{"id", "name", "price_daily", "description", "image_url", "features", "is_featured"},
	InsertColumns: []string{"name", "price_daily", "description", "image_url", "features", "is_featured"},
	Values: func(i models.Insurance) []any {
		return []any{i.Name, i.PriceDaily, i.Description, i.ImageURL, i.Features, i.Featured}
	},
	Scan: func(row RowScanner) (models.Insurance, error) {
		var i models.Insurance
		err := row.Scan(&i.ID, &i.Name, &i.PriceDaily, &i.Description, &i.ImageURL, &i.Features, &i.Featured)
		return i, err
	},
}

var reviewTable = Table[models.Review]{
	Name:          models.Review{}.TableName(),
	Columns:       []string{"id", "nickname", "city", "country", "rating", "comment", "is_active", "created_at", "tour_id"},
	InsertColumns: []string{"nickname", "city", "country", "rating", "comment", "is_active", "tour_id"},
	Values: func(r models.Review) []any {
		return []any{r.Nickname, r.City, r.Country, r.Rating, r.Comment, r.Active, r.TourID}
	},
	Scan: func(row RowScanner) (models.Review, error) {
		var r models.Review
		err := row.Scan(&r.ID, &r.Nickname, &r.City, &r.Country, &r.Rating, &r.Comment, &r.Active, &r.CreatedAt, &r.TourID)
		return r, err
	},
}

var subscriberTable = Table[models.Subscriber]{
	Name:          models.Subscriber{}.TableName(),
	Columns:       []string{"id", "email", "first_name", "last_name", "interests", "created_at"},
	InsertColumns: []string{"email", "first_name", "last_name", "interests"},
	Values: func(s models.Subscriber) []any {
		return []any{s.Email, s.FirstName, s.LastName, s.Interests}
	},
	Scan: func(row RowScanner) (models.Subscriber, error) {
		var s models.Subscriber
		err := row.Scan(&s.ID, &s.Email, &s.FirstName, &s.LastName, &s.Interests, &s.CreatedAt)
		return s, err
	},
}

var inquiryTable = Table[models.Inquiry]{
	Name:          models.Inquiry{}.TableName(),
	Columns:       []string{"id", "email", "item_type", "item_id", "item_title", "status", "created_at"},
	InsertColumns: []string{"email", "item_type", "item_id", "item_title", "status"},
	Values: func(i models.Inquiry) []any {
		return []any{i.Email, i.ItemType, i.ItemID, i.ItemTitle, i.Status}
	},
	Scan: func(row RowScanner) (models.Inquiry, error) {
		var i models.Inquiry
		err := row.Scan(&i.ID, &i.Email, &i.ItemType, &i.ItemID, &i.ItemTitle, &i.Status, &i.CreatedAt)
		return i, err
	},
}

var userTable = Table[models.User]{
	Name:          models.User{}.TableName(),
	Columns:       []string{"id", "username", "password_hash", "created_at"},
	InsertColumns: []string{"username", "password_hash"},
	Values: func(u models.User) []any {
		return []any{u.Username, u.PasswordHash}
	},
	Scan: func(row RowScanner) (models.User, error) {
		var u models.User
		err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
		return u, err
	},
}
