//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"parcelmarket/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)
	GetByID(ctx context.Context, id string) (*entities.Parcel, error)
	Create(ctx context.Context, parcelModify entities.ParcelModify, createdAt time.Time) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
	Assign(ctx context.Context, parcelID, riderEmail string, assignedAt time.Time) (int64, error)
	MarkPaid(ctx context.Context, parcelID string) (int64, error)
}

type RiderService interface {
	MarkRiderInDelivery(ctx context.Context, email, parcelID string) (int64, error)
}
