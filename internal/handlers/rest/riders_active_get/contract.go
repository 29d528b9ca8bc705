//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=riders_active_get_test
package riders_active_get

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
	GetActiveRiders(ctx context.Context) ([]entities.Rider, error)
}

type Rider struct {
	ID            string    `json:"id"`
	Name          string    `json:"name,omitempty"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	District      string    `json:"district,omitempty"`
	Status        string    `json:"status"`
	WorkStatus    string    `json:"work_status"`
	CurrentParcel string    `json:"current_parcel,omitempty"`
	AppliedAt     time.Time `json:"applied_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
