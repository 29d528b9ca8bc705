package parcel_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmarket/internal/pkg/httperr"
	"parcelmarket/internal/service/parcel"
	"parcelmarket/internal/service/rider"
	"parcelmarket/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var assignDTO ParcelAssign
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assignment, err := h.service.AssignRider(r.Context(), assignDTO.ParcelID, assignDTO.RiderEmail, assignDTO.AssignedAt)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidParcelID):
			httperr.Write(w, http.StatusBadRequest, "parcel_id and rider_email are required")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := ParcelAssignResponse{
		ParcelModified: assignment.ParcelModified,
		RiderModified:  assignment.RiderModified,
		AssignedAt:     assignment.AssignedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
