package entities

import "time"

type Payment struct {
	ID            string
	ParcelID      string
	Email         string
	Amount        int64
	PaymentMethod string
	TransactionID string
	PaidAt        time.Time
	PaidAtString  string
}

type PaymentModify struct {
	ParcelID      *string
	Email         *string
	Amount        *int64
	PaymentMethod *string
	TransactionID *string
}

// PaymentIntent is the client-usable handle returned by the payment
// gateway for a not-yet-captured charge.
type PaymentIntent struct {
	ClientSecret string
}
