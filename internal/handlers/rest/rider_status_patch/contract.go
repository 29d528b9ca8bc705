//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_status_patch_test
package rider_status_patch

import (
	"context"

	"parcelmarket/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetRiderStatus(ctx context.Context, id, status string) (int64, error)
}

type RiderStatusUpdate struct {
	Status string `json:"status"`
}

type RiderStatusUpdateResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}
