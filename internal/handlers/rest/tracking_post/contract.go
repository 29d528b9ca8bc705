//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_post_test
package tracking_post

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
	AddTrackingLog(ctx context.Context, logModify entities.TrackingLogModify) (string, error)
}

type TrackingLogCreate struct {
	TrackingID *string `json:"tracking_id"`
	ParcelID   *string `json:"parcel_id"`
	Status     *string `json:"status"`
	Message    *string `json:"message"`
	UpdatedBy  *string `json:"updated_by"`
}

type TrackingLogCreateResponse struct {
	InsertedID string `json:"inserted_id"`
}
