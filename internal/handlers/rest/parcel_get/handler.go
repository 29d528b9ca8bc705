package parcel_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	id := mux.Vars(r)["id"]

	parcelEntity, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			httperr.Write(w, http.StatusNotFound, "parcel not found")
		case errors.Is(err, parcel.ErrInvalidParcelID):
			httperr.Write(w, http.StatusBadRequest, "invalid parcel id")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	parcelDTO := Parcel{
		ID:              parcelEntity.ID,
		Title:           parcelEntity.Title,
		SenderEmail:     parcelEntity.SenderEmail,
		ReceiverName:    parcelEntity.ReceiverName,
		ReceiverAddress: parcelEntity.ReceiverAddress,
		District:        parcelEntity.District,
		Weight:          parcelEntity.Weight,
		PaymentStatus:   parcelEntity.PaymentStatus.String(),
		DeliveryStatus:  parcelEntity.DeliveryStatus.String(),
		AssignedRider:   parcelEntity.AssignedRider,
		AssignedAt:      parcelEntity.AssignedAt,
		CreatedAt:       parcelEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
