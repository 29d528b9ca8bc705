package parcel_delete

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

	deleted, err := h.service.DeleteParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID):
			httperr.Write(w, http.StatusBadRequest, "invalid parcel id")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := ParcelDeleteResponse{
		DeletedCount: deleted,
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
