package rider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parcelmarket/internal/entities"
)

type Rider struct {
	repository  Repository
	userService UserService
}

func New(repository Repository, userService UserService) *Rider {
	return &Rider{
		repository:  repository,
		userService: userService,
	}
}

// ApplyAsRider records an open application: every rider starts pending
// and available, with a server-assigned application time.
func (s *Rider) ApplyAsRider(ctx context.Context, riderModify entities.RiderModify) (string, error) {
	if riderModify.Email == nil || strings.TrimSpace(*riderModify.Email) == "" {
		return "", ErrMissingRequiredFields
	}

	pending := entities.RiderPending
	available := entities.RiderAvailable
	riderModify.Status = &pending
	riderModify.WorkStatus = &available

	id, err := s.repository.Create(ctx, riderModify, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("create rider application: %w", err)
	}

	return id, nil
}

func (s *Rider) GetPendingRiders(ctx context.Context) ([]entities.Rider, error) {
	riders, err := s.repository.GetByStatus(ctx, entities.RiderPending)
	if err != nil {
		return nil, fmt.Errorf("get pending riders: %w", err)
	}

	return riders, nil
}

func (s *Rider) GetActiveRiders(ctx context.Context) ([]entities.Rider, error) {
	riders, err := s.repository.GetByStatus(ctx, entities.RiderActive)
	if err != nil {
		return nil, fmt.Errorf("get active riders: %w", err)
	}

	return riders, nil
}

func (s *Rider) GetAvailableRidersByDistrict(ctx context.Context, district string) ([]entities.Rider, error) {
	if strings.TrimSpace(district) == "" {
		return nil, ErrEmptyDistrict
	}

	riders, err := s.repository.GetAvailableByDistrict(ctx, district)
	if err != nil {
		return nil, fmt.Errorf("get available riders: %w", err)
	}

	return riders, nil
}

// SetRiderStatus is the unrestricted status write: any value is
// accepted and no cascade runs.
func (s *Rider) SetRiderStatus(ctx context.Context, id, status string) (int64, error) {
	if strings.TrimSpace(id) == "" {
		return 0, ErrInvalidRiderID
	}
	if strings.TrimSpace(status) == "" {
		return 0, ErrMissingRequiredFields
	}

	modified, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return 0, fmt.Errorf("set rider status: %w", err)
	}
	if modified == 0 {
		return 0, ErrRiderNotFound
	}

	return modified, nil
}

// ReviewRiderApplication resolves a pending application to "active" or
// "rejected". Activation cascades the user's role to "rider"; the
// cascade is best effort and its failure does not fail the review.
func (s *Rider) ReviewRiderApplication(ctx context.Context, id, status string) (int64, error) {
	if strings.TrimSpace(id) == "" {
		return 0, ErrInvalidRiderID
	}
	if !isReviewStatus(status) {
		return 0, ErrInvalidStatus
	}

	riderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("review rider application: %w", err)
	}

	modified, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return 0, fmt.Errorf("review rider application: %w", err)
	}
	if modified == 0 {
		return 0, ErrRiderNotFound
	}

	if entities.RiderStatusType(status) == entities.RiderActive && riderEntity.Email != "" {
		// A rider account may exist without a user record; the
		// approval stands either way.
		_ = s.userService.SetUserRoleByEmail(ctx, riderEntity.Email, entities.RoleRider)
	}

	return modified, nil
}

func (s *Rider) DeleteRider(ctx context.Context, id string) (int64, error) {
	if strings.TrimSpace(id) == "" {
		return 0, ErrInvalidRiderID
	}

	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete rider: %w", err)
	}
	if deleted == 0 {
		return 0, ErrRiderNotFound
	}

	return deleted, nil
}

// MarkRiderInDelivery is the rider half of the assignment flow,
// matched by email.
func (s *Rider) MarkRiderInDelivery(ctx context.Context, email, parcelID string) (int64, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(parcelID) == "" {
		return 0, ErrMissingRequiredFields
	}

	modified, err := s.repository.MarkInDelivery(ctx, email, parcelID)
	if err != nil {
		return 0, fmt.Errorf("mark rider in delivery: %w", err)
	}

	return modified, nil
}

// ReleaseDeliveredRiders frees riders whose current parcel has been
// delivered; it backs the periodic background task.
func (s *Rider) ReleaseDeliveredRiders(ctx context.Context) (int64, error) {
	released, err := s.repository.ReleaseDelivered(ctx)
	if err != nil {
		return 0, fmt.Errorf("release delivered riders: %w", err)
	}

	return released, nil
}
