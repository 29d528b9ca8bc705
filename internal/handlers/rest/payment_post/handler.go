package payment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmarket/internal/entities"
	"parcelmarket/internal/pkg/httperr"
	"parcelmarket/internal/service/parcel"
	"parcelmarket/internal/service/payment"
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
	var paymentDTO PaymentCreate
	err := json.NewDecoder(r.Body).Decode(&paymentDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, "invalid request body")
		return
	}

	paymentModify := entities.PaymentModify{
		ParcelID:      paymentDTO.ParcelID,
		Email:         paymentDTO.Email,
		Amount:        paymentDTO.Amount,
		PaymentMethod: paymentDTO.PaymentMethod,
		TransactionID: paymentDTO.TransactionID,
	}

	id, err := h.service.RecordPayment(r.Context(), paymentModify)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidParcelID):
			httperr.Write(w, http.StatusBadRequest, "missing required fields")
		case errors.Is(err, payment.ErrParcelNotPayable):
			httperr.Write(w, http.StatusNotFound, "parcel not found or already paid")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := PaymentCreateResponse{
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
