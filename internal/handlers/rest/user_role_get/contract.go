//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_role_get_test
package user_role_get

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
	GetUserRole(ctx context.Context, email string) (entities.UserRoleType, error)
}

type UserRoleResponse struct {
	Role string `json:"role"`
}
