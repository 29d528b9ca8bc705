package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmarket/internal/entities"
	"parcelmarket/internal/pkg/httperr"
	"parcelmarket/internal/service/parcel"
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
	var parcelDTO ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parcelModify := entities.ParcelModify{
		Title:           &parcelDTO.Title,
		SenderEmail:     &parcelDTO.SenderEmail,
		ReceiverName:    &parcelDTO.ReceiverName,
		ReceiverAddress: &parcelDTO.ReceiverAddress,
		District:        &parcelDTO.District,
		Weight:          &parcelDTO.Weight,
	}

	id, err := h.service.CreateParcel(r.Context(), parcelModify)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			httperr.Write(w, http.StatusBadRequest, "missing required fields")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := ParcelCreateResponse{
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
