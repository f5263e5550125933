// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/travel-agency/internal/app"
	"github.com/MKhiriev/travel-agency/internal/service"
	"github.com/MKhiriev/travel-agency/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGzipRequests, middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	s := h.services

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.With(h.auth).Get("/check", h.checkSession)
		})

		r.Route("/tours", func(r chi.Router) {
			r.With(h.authIfAdmin).Get("/", listItems(s.TourService, tourFilter))
			r.Get("/{id}", getItem(s.TourService))

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", createItem(s.TourService))
				r.Put("/{id}", updateItem(s.TourService))
				r.Patch("/{id}", updateItem(s.TourService))
				r.Delete("/{id}", deleteItem(s.TourService, app.MsgTourDeleted))
			})
		})

		r.Route("/cars", func(r chi.Router) {
			r.With(h.authIfAdmin).Get("/", listItems(s.CarService, carFilter))
			r.Get("/{id}", getItem(s.CarService))

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", createItem(s.CarService))
				r.Put("/{id}", updateItem(s.CarService))
				r.Patch("/{id}", updateItem(s.CarService))
				r.Delete("/{id}", deleteItem(s.CarService, app.MsgCarDeleted))
			})
		})

		r.Route("/insurance", func(r chi.Router) {
			r.Get("/", listItems(s.InsuranceService, insuranceFilter))
			r.Get("/{id}", getItem(s.InsuranceService))

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", createItem(s.InsuranceService))
				r.Put("/{id}", updateItem(s.InsuranceService))
				r.Patch("/{id}", updateItem(s.InsuranceService))
				r.Delete("/{id}", deleteItem(s.InsuranceService, app.MsgInsuranceDeleted))
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.With(h.authIfAdmin).Get("/", listItems(s.ReviewService, reviewFilter))
			r.Get("/{id}", getItem(s.ReviewService))
			r.Post("/", createItem(s.ReviewService))

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Put("/{id}", updateItem(s.ReviewService))
				r.Patch("/{id}", updateItem(s.ReviewService))
				r.Delete("/{id}", deleteItem(s.ReviewService, app.MsgReviewDeleted))
			})
		})

		r.Route("/newsletter", func(r chi.Router) {
			r.Post("/subscribe", h.subscribe)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/", h.listSubscribers)
				r.Get("/export", h.exportSubscribers)
				r.Delete("/{id}", h.deleteSubscriber)
			})
		})

		r.Route("/inquiries", func(r chi.Router) {
			inquiries := service.ResourceService[models.InquiryPayload, models.InquiryView, models.NoFilter](s.InquiryService)

			r.Post("/", createItem(inquiries))

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/", listItems(inquiries, noFilter))
				r.Put("/{id}/status", h.updateInquiryStatus)
				r.Put("/{id}", updateItem(inquiries))
				r.Patch("/{id}", updateItem(inquiries))
				r.Delete("/{id}", deleteItem(inquiries, app.MsgInquiryDeleted))
			})
		})
	})

	return router
}
