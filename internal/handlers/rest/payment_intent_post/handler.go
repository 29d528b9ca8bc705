package payment_intent_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmarket/internal/pkg/httperr"
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
	var intentDTO PaymentIntentCreate
	err := json.NewDecoder(r.Body).Decode(&intentDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, "invalid request body")
		return
	}

	intent, err := h.service.CreatePaymentIntent(r.Context(), intentDTO.AmountInCents)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			httperr.Write(w, http.StatusBadRequest, "amount must be positive")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
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
