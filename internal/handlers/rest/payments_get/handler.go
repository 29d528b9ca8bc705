package payments_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmarket/internal/pkg/httperr"
	"parcelmarket/internal/pkg/middlewares/identity"
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
	claim, ok := identity.FromContext(r.Context())
	if !ok {
		httperr.Write(w, http.StatusUnauthorized, "authorization header is required")
		return
	}

	queryEmail := r.URL.Query().Get("email")

	paymentEntities, err := h.service.GetPayments(r.Context(), claim.Email, queryEmail)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrEmailMismatch):
			httperr.Write(w, http.StatusForbidden, "forbidden access")
		default:
			httperr.Write(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	paymentDTOs := make([]Payment, len(paymentEntities))
	for i, paymentEntity := range paymentEntities {
		paymentDTOs[i] = Payment{
			ID:            paymentEntity.ID,
			ParcelID:      paymentEntity.ParcelID,
			Email:         paymentEntity.Email,
			Amount:        paymentEntity.Amount,
			PaymentMethod: paymentEntity.PaymentMethod,
			TransactionID: paymentEntity.TransactionID,
			PaidAt:        paymentEntity.PaidAt,
			PaidAtString:  paymentEntity.PaidAtString,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(paymentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
