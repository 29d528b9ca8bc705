//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_assign_post_test
package parcel_assign_post

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
	AssignRider(ctx context.Context, parcelID, riderEmail string, assignedAt *time.Time) (*entities.ParcelAssignment, error)
}

type ParcelAssign struct {
	ParcelID   string     `json:"parcel_id"`
	RiderEmail string     `json:"rider_email"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
}

type ParcelAssignResponse struct {
	ParcelModified int64     `json:"parcel_modified"`
	RiderModified  int64     `json:"rider_modified"`
	AssignedAt     time.Time `json:"assigned_at"`
}
