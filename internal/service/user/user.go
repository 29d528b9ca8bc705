package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelmarket/internal/entities"
)

// searchLimit caps the user search result size.
const searchLimit = 10

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

func (s *User) SearchUsers(ctx context.Context, emailFragment string) ([]entities.UserSummary, error) {
	emailFragment = strings.TrimSpace(emailFragment)
	if emailFragment == "" {
		return nil, ErrEmptySearchQuery
	}

	users, err := s.repository.Search(ctx, emailFragment, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	return users, nil
}

func (s *User) GetUserRole(ctx context.Context, email string) (entities.UserRoleType, error) {
	if strings.TrimSpace(email) == "" {
		return "", ErrInvalidEmail
	}

	userEntity, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("get user role: %w", err)
	}

	if userEntity.Role == "" {
		return entities.DefaultUserRole, nil
	}
	return userEntity.Role, nil
}

// UpsertUser is an idempotent create keyed by email: an existing user
// is acknowledged without modification.
func (s *User) UpsertUser(ctx context.Context, userModify entities.UserModify) (id string, created bool, err error) {
	if userModify.Email == nil {
		return "", false, ErrMissingRequiredFields
	}
	if !isValidEmail(*userModify.Email) {
		return "", false, ErrInvalidEmail
	}

	existing, err := s.repository.GetByEmail(ctx, *userModify.Email)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return "", false, fmt.Errorf("upsert user lookup: %w", err)
	}

	if userModify.Role == nil {
		defaultRole := entities.DefaultUserRole
		userModify.Role = &defaultRole
	}

	id, err = s.repository.Create(ctx, userModify, time.Now().UTC())
	if err != nil {
		return "", false, fmt.Errorf("create user: %w", err)
	}

	return id, true, nil
}

func (s *User) SetUserRole(ctx context.Context, id string, role string) (int64, error) {
	if strings.TrimSpace(id) == "" {
		return 0, ErrInvalidUserID
	}
	if !isAssignableRole(role) {
		return 0, ErrInvalidRole
	}

	modified, err := s.repository.UpdateRole(ctx, id, entities.UserRoleType(role))
	if err != nil {
		return 0, fmt.Errorf("set user role: %w", err)
	}
	if modified == 0 {
		return 0, ErrUserNotFound
	}

	return modified, nil
}

// SetUserRoleByEmail backs the rider-approval cascade; unlike
// SetUserRole it accepts any role value and reports nothing about
// match counts.
func (s *User) SetUserRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidEmail
	}

	_, err := s.repository.UpdateRoleByEmail(ctx, email, role)
	if err != nil {
		return fmt.Errorf("set user role by email: %w", err)
	}
	return nil
}
