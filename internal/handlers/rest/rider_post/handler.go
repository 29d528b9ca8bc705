package rider_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmarket/internal/entities"
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
	var riderDTO RiderApplication
	err := json.NewDecoder(r.Body).Decode(&riderDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, "invalid request body")
		return
	}

	riderModify := entities.RiderModify{
		Name:     &riderDTO.Name,
		Email:    &riderDTO.Email,
		Phone:    &riderDTO.Phone,
		District: &riderDTO.District,
	}

	id, err := h.service.ApplyAsRider(r.Context(), riderModify)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrMissingRequiredFields):
			httperr.Write(w, http.StatusBadRequest, "email is required")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := RiderApplicationResponse{
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
