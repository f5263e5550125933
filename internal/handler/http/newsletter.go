// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/travel-agency/internal/app"
	"github.com/MKhiriev/travel-agency/internal/utils"
	"github.com/MKhiriev/travel-agency/models"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFileName  = "newsletter.xlsx"
)

// subscribe answers 201 for a new address and 200 for a known one.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var payload models.SubscriptionPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.NewsletterService.Subscribe(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, models.SubscribeResponse{Message: app.MsgSubscribed, Created: created}, status)
}

func (h *Handler) listSubscribers(w http.ResponseWriter, r *http.Request) {
	views, err := h.services.NewsletterService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) deleteSubscriber(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.NewsletterService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSubscriberDeleted}, http.StatusOK)
}

// exportSubscribers buffers the workbook so that a failed export still
// produces a JSON error instead of a truncated file.
func (h *Handler) exportSubscribers(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.services.NewsletterService.Export(r.Context(), &buf); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
