//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_get_test
package parcels_get

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
	GetParcels(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)
}

type Parcel struct {
	ID              string     `json:"id"`
	Title           string     `json:"title,omitempty"`
	SenderEmail     string     `json:"sender_email,omitempty"`
	ReceiverName    string     `json:"receiver_name,omitempty"`
	ReceiverAddress string     `json:"receiver_address,omitempty"`
	District        string     `json:"district,omitempty"`
	Weight          float64    `json:"weight,omitempty"`
	PaymentStatus   string     `json:"payment_status"`
	DeliveryStatus  string     `json:"delivery_status"`
	AssignedRider   string     `json:"assigned_rider,omitempty"`
	AssignedAt      *time.Time `json:"assigned_at,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
