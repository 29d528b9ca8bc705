//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"
	"time"

	"parcelmarket/internal/entities"
)

type Repository interface {
	Search(ctx context.Context, emailFragment string, limit int64) ([]entities.UserSummary, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, userModify entities.UserModify, createdAt time.Time) (string, error)
	UpdateRole(ctx context.Context, id string, role entities.UserRoleType) (int64, error)
	UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) (int64, error)
}
