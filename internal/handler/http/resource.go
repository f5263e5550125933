// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/travel-agency/internal/service"
	"github.com/MKhiriev/travel-agency/internal/utils"
	"github.com/MKhiriev/travel-agency/models"
)

// The functions below build the handlers shared by every catalog resource.
// P is the request payload, V the wire view and F the listing filter.

func listItems[P, V, F any](svc service.ResourceService[P, V, F], filter func(*http.Request) F) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := svc.List(r.Context(), filter(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, views, http.StatusOK)
	}
}

func getItem[P, V, F any](svc service.ResourceService[P, V, F]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		view, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, view, http.StatusOK)
	}
}

func createItem[P, V, F any](svc service.ResourceService[P, V, F]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload P
		if err := decodeJSON(r, &payload); err != nil {
			writeError(w, r, err)
			return
		}

		view, err := svc.Create(r.Context(), payload)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, view, http.StatusCreated)
	}
}

// updateItem serves both PUT and PATCH: only the fields present in the body
// are changed.
func updateItem[P, V, F any](svc service.ResourceService[P, V, F]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var payload P
		if err = decodeJSON(r, &payload); err != nil {
			writeError(w, r, err)
			return
		}

		view, err := svc.Update(r.Context(), id, payload)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, view, http.StatusOK)
	}
}

func deleteItem[P, V, F any](svc service.ResourceService[P, V, F], message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err = svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
	}
}
