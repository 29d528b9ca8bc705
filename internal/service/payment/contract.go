//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"parcelmarket/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, paymentModify entities.PaymentModify, paidAt time.Time) (string, error)
	GetByEmail(ctx context.Context, email string) ([]entities.Payment, error)
}

type ParcelService interface {
	MarkParcelPaid(ctx context.Context, parcelID string) (int64, error)
}

// Gateway is the external payment processor client.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amountInCents int64) (*entities.PaymentIntent, error)
}
