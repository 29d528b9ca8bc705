//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_post_test
package payment_post

import (
	"context"

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
	RecordPayment(ctx context.Context, paymentModify entities.PaymentModify) (string, error)
}

type PaymentCreate struct {
	ParcelID      *string `json:"parcel_id"`
	Email         *string `json:"email"`
	Amount        *int64  `json:"amount"`
	PaymentMethod *string `json:"payment_method"`
	TransactionID *string `json:"transaction_id"`
}

type PaymentCreateResponse struct {
	InsertedID string `json:"inserted_id"`
}
