//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"
	"time"

	"parcelmarket/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, logModify entities.TrackingLogModify, at time.Time) (string, error)
}
