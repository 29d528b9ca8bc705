package riders_available_get

import (
	"encoding/json"
	"errors"
	"net/http"

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
	district := r.URL.Query().Get("district")

	riderEntities, err := h.service.GetAvailableRidersByDistrict(r.Context(), district)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrEmptyDistrict):
			httperr.Write(w, http.StatusBadRequest, "district query parameter is required")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	riderDTOs := make([]Rider, len(riderEntities))
	for i, riderEntity := range riderEntities {
		riderDTOs[i] = Rider{
			ID:            riderEntity.ID,
			Name:          riderEntity.Name,
			Email:         riderEntity.Email,
			Phone:         riderEntity.Phone,
			District:      riderEntity.District,
			Status:        riderEntity.Status.String(),
			WorkStatus:    riderEntity.WorkStatus.String(),
			CurrentParcel: riderEntity.CurrentParcel,
			AppliedAt:     riderEntity.AppliedAt,
			UpdatedAt:     riderEntity.UpdatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(riderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
