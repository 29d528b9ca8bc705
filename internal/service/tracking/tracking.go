package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parcelmarket/internal/entities"
)

type Tracking struct {
	repository Repository
}

func New(repository Repository) *Tracking {
	return &Tracking{
		repository: repository,
	}
}

// AddTrackingLog appends one tracking entry with a server-assigned
// time. Entries are never updated afterwards.
func (s *Tracking) AddTrackingLog(ctx context.Context, logModify entities.TrackingLogModify) (string, error) {
	if logModify.Status == nil || strings.TrimSpace(*logModify.Status) == "" {
		return "", ErrMissingRequiredFields
	}

	id, err := s.repository.Create(ctx, logModify, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("add tracking log: %w", err)
	}

	return id, nil
}

// ProcessParcelStatusChanged turns a parcel status event into a
// tracking entry; the worker consumes these from the status topic.
func (s *Tracking) ProcessParcelStatusChanged(ctx context.Context, logModify entities.TrackingLogModify) (string, error) {
	if logModify.ParcelID == nil || strings.TrimSpace(*logModify.ParcelID) == "" {
		return "", ErrMissingRequiredFields
	}
	if logModify.Status == nil || strings.TrimSpace(*logModify.Status) == "" {
		return "", ErrMissingRequiredFields
	}

	id, err := s.repository.Create(ctx, logModify, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("process parcel status change: %w", err)
	}

	return id, nil
}
