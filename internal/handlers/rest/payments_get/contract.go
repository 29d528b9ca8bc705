//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payments_get_test
package payments_get

import (
	"context"
	"time"

	"parcelmarket/internal/entities"
	"parcelmarket/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetPayments(ctx context.Context, requesterEmail, queryEmail string) ([]entities.Payment, error)
}

type Payment struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcel_id"`
	Email         string    `json:"email"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
	PaidAt        time.Time `json:"paid_at"`
	PaidAtString  string    `json:"paid_at_string"`
}
