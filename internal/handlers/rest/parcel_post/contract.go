//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_post_test
package parcel_post

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
	CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (string, error)
}

type ParcelCreate struct {
	Title           string  `json:"title"`
	SenderEmail     string  `json:"sender_email"`
	ReceiverName    string  `json:"receiver_name"`
	ReceiverAddress string  `json:"receiver_address"`
	District        string  `json:"district"`
	Weight          float64 `json:"weight"`
}

type ParcelCreateResponse struct {
	InsertedID string `json:"inserted_id"`
}
