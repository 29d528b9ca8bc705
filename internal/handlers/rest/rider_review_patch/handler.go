package rider_review_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcelmarket/internal/pkg/httperr"
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
	id := mux.Vars(r)["id"]

	var reviewDTO RiderReview
	err := json.NewDecoder(r.Body).Decode(&reviewDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, "invalid request body")
		return
	}

	modified, err := h.service.ReviewRiderApplication(r.Context(), id, reviewDTO.Status)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidStatus):
			httperr.Write(w, http.StatusBadRequest, "status must be active or rejected")
		case errors.Is(err, rider.ErrInvalidRiderID):
			httperr.Write(w, http.StatusBadRequest, "invalid rider id")
		case errors.Is(err, rider.ErrRiderNotFound):
			httperr.Write(w, http.StatusNotFound, "rider not found")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := RiderReviewResponse{
		ModifiedCount: modified,
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
