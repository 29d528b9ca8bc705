//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_delete_test
package rider_delete

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
	DeleteRider(ctx context.Context, id string) (int64, error)
}

type RiderDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
