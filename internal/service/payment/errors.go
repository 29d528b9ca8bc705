package payment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrEmailMismatch         = errors.New("email does not match the verified identity")

	// ErrParcelNotPayable covers both a missing parcel and an
	// already-paid one: the conditional update cannot tell them apart.
	ErrParcelNotPayable = errors.New("parcel not found or already paid")
)
