//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"
	"time"

	"parcelmarket/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModify entities.RiderModify, appliedAt time.Time) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Rider, error)
	GetByStatus(ctx context.Context, status entities.RiderStatusType) ([]entities.Rider, error)
	GetAvailableByDistrict(ctx context.Context, district string) ([]entities.Rider, error)
	UpdateStatus(ctx context.Context, id string, status string) (int64, error)
	MarkInDelivery(ctx context.Context, email, parcelID string) (int64, error)
	ReleaseDelivered(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type UserService interface {
	SetUserRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) error
}
