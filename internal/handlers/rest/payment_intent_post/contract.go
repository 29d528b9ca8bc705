//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_intent_post_test
package payment_intent_post

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
	CreatePaymentIntent(ctx context.Context, amountInCents int64) (*entities.PaymentIntent, error)
}

type PaymentIntentCreate struct {
	AmountInCents int64 `json:"amount_in_cents"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}
