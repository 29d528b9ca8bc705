package parcel_status_changed

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
	ProcessParcelStatusChanged(ctx context.Context, logModify entities.TrackingLogModify) (string, error)
}

type statusChangedEvent struct {
	ParcelID   string `json:"parcel_id"`
	TrackingID string `json:"tracking_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	UpdatedBy  string `json:"updated_by"`
}
