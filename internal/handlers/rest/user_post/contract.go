//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_post_test
package user_post

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
	UpsertUser(ctx context.Context, userModify entities.UserModify) (id string, created bool, err error)
}

type UserCreate struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type UserCreateResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
