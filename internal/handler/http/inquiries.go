// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/travel-agency/internal/utils"
	"github.com/MKhiriev/travel-agency/models"
)

func (h *Handler) updateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var payload models.InquiryStatusPayload
	if err = decodeJSON(r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.InquiryService.UpdateStatus(r.Context(), id, payload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, view, http.StatusOK)
}
