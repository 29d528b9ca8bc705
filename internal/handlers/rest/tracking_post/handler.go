package tracking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmarket/internal/entities"
	"parcelmarket/internal/pkg/httperr"
	"parcelmarket/internal/service/tracking"
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
	var logDTO TrackingLogCreate
	err := json.NewDecoder(r.Body).Decode(&logDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, "invalid request body")
		return
	}

	logModify := entities.TrackingLogModify{
		TrackingID: logDTO.TrackingID,
		ParcelID:   logDTO.ParcelID,
		Status:     logDTO.Status,
		Message:    logDTO.Message,
		UpdatedBy:  logDTO.UpdatedBy,
	}

	id, err := h.service.AddTrackingLog(r.Context(), logModify)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrMissingRequiredFields):
			httperr.Write(w, http.StatusBadRequest, "status is required")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := TrackingLogCreateResponse{
		InsertedID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
