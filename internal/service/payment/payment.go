package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parcelmarket/internal/entities"
)

type Payment struct {
	repository    Repository
	parcelService ParcelService
	gateway       Gateway
}

func New(repository Repository, parcelService ParcelService, gateway Gateway) *Payment {
	return &Payment{
		repository:    repository,
		parcelService: parcelService,
		gateway:       gateway,
	}
}

// RecordPayment marks the parcel paid first and only then inserts the
// Payment document. The conditional parcel update is the gate: when it
// modifies nothing the payment is rejected and no record is written,
// so an already-paid parcel can never accumulate duplicate payments.
func (s *Payment) RecordPayment(ctx context.Context, paymentModify entities.PaymentModify) (string, error) {
	if paymentModify.ParcelID == nil ||
		paymentModify.Email == nil ||
		paymentModify.Amount == nil ||
		paymentModify.PaymentMethod == nil ||
		paymentModify.TransactionID == nil {
		return "", ErrMissingRequiredFields
	}

	modified, err := s.parcelService.MarkParcelPaid(ctx, *paymentModify.ParcelID)
	if err != nil {
		return "", fmt.Errorf("record payment: %w", err)
	}
	if modified == 0 {
		return "", ErrParcelNotPayable
	}

	id, err := s.repository.Create(ctx, paymentModify, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("create payment: %w", err)
	}

	return id, nil
}

// GetPayments lists payments for queryEmail, newest first. The query
// is only allowed for the caller's own email.
func (s *Payment) GetPayments(ctx context.Context, requesterEmail, queryEmail string) ([]entities.Payment, error) {
	if !strings.EqualFold(strings.TrimSpace(requesterEmail), strings.TrimSpace(queryEmail)) {
		return nil, ErrEmailMismatch
	}

	payments, err := s.repository.GetByEmail(ctx, queryEmail)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	return payments, nil
}

func (s *Payment) CreatePaymentIntent(ctx context.Context, amountInCents int64) (*entities.PaymentIntent, error) {
	if amountInCents <= 0 {
		return nil, ErrInvalidAmount
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, amountInCents)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return intent, nil
}
