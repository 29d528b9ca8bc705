//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_role_patch_test
package user_role_patch

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
	SetUserRole(ctx context.Context, id string, role string) (int64, error)
}

type UserRoleUpdate struct {
	Role string `json:"role"`
}

type UserRoleUpdateResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}
