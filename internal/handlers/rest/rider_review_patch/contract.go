//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_review_patch_test
package rider_review_patch

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
	ReviewRiderApplication(ctx context.Context, id, status string) (int64, error)
}

type RiderReview struct {
	Status string `json:"status"`
}

type RiderReviewResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}
