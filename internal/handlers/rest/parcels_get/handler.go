package parcels_get

import (
	"encoding/json"
	"net/http"

	"parcelmarket/internal/entities"
	"parcelmarket/internal/pkg/httperr"
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
	var filter entities.ParcelFilter
	if v := r.URL.Query().Get("payment_status"); v != "" {
		status := entities.PaymentStatusType(v)
		filter.PaymentStatus = &status
	}
	if v := r.URL.Query().Get("delivery_status"); v != "" {
		status := entities.DeliveryStatusType(v)
		filter.DeliveryStatus = &status
	}

	parcelEntities, err := h.service.GetParcels(r.Context(), filter)
	if err != nil {
		httperr.Write(w, http.StatusInternalServerError, "internal server error")
		return
	}

	parcelDTOs := make([]Parcel, len(parcelEntities))
	for i, parcelEntity := range parcelEntities {
		parcelDTOs[i] = Parcel{
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
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
