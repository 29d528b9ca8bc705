package parcel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parcelmarket/internal/entities"
)

type Parcel struct {
	repository   Repository
	riderService RiderService
}

func New(repository Repository, riderService RiderService) *Parcel {
	return &Parcel{
		repository:   repository,
		riderService: riderService,
	}
}

func (s *Parcel) GetParcels(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	parcels, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get parcels: %w", err)
	}

	return parcels, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id string) (*entities.Parcel, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidParcelID
	}

	parcelEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	return parcelEntity, nil
}

func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (string, error) {
	// New parcels always enter the lifecycle unpaid and pending;
	// the creation timestamp is the listing sort key.
	if parcelModify.PaymentStatus == nil {
		unpaid := entities.ParcelUnpaid
		parcelModify.PaymentStatus = &unpaid
	}
	if parcelModify.DeliveryStatus == nil {
		pending := entities.DeliveryPending
		parcelModify.DeliveryStatus = &pending
	}

	id, err := s.repository.Create(ctx, parcelModify, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("create parcel: %w", err)
	}

	return id, nil
}

func (s *Parcel) DeleteParcel(ctx context.Context, id string) (int64, error) {
	if strings.TrimSpace(id) == "" {
		return 0, ErrInvalidParcelID
	}

	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete parcel: %w", err)
	}

	return deleted, nil
}

// AssignRider performs the two-write assignment flow: the parcel and
// rider updates are independent, both are attempted regardless of the
// other's outcome, and the result reports each modified count
// separately. There is no atomicity between the two writes.
func (s *Parcel) AssignRider(ctx context.Context, parcelID, riderEmail string, assignedAt *time.Time) (*entities.ParcelAssignment, error) {
	if strings.TrimSpace(parcelID) == "" || strings.TrimSpace(riderEmail) == "" {
		return nil, ErrMissingRequiredFields
	}

	at := time.Now().UTC()
	if assignedAt != nil {
		at = assignedAt.UTC()
	}

	parcelModified, parcelErr := s.repository.Assign(ctx, parcelID, riderEmail, at)
	riderModified, riderErr := s.riderService.MarkRiderInDelivery(ctx, riderEmail, parcelID)

	if parcelErr != nil {
		return nil, fmt.Errorf("assign parcel: %w", parcelErr)
	}
	if riderErr != nil {
		return nil, fmt.Errorf("mark rider in delivery: %w", riderErr)
	}

	return &entities.ParcelAssignment{
		ParcelID:       parcelID,
		RiderEmail:     riderEmail,
		AssignedAt:     at,
		ParcelModified: parcelModified,
		RiderModified:  riderModified,
	}, nil
}

// MarkParcelPaid conditionally flips payment_status to "paid". A zero
// modified count means the parcel is missing or already paid; the two
// cases are indistinguishable to callers.
func (s *Parcel) MarkParcelPaid(ctx context.Context, parcelID string) (int64, error) {
	if strings.TrimSpace(parcelID) == "" {
		return 0, ErrInvalidParcelID
	}

	modified, err := s.repository.MarkPaid(ctx, parcelID)
	if err != nil {
		return 0, fmt.Errorf("mark parcel paid: %w", err)
	}

	return modified, nil
}
